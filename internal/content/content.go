// Package content holds the restaurant's static copy: the specials, the
// testimonials and the contact details shown across the site.
package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"regexp"
	"sync"

	"little-lemon/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultCatalogue []byte

var ErrInvalidCatalogue = errs.New("invalid content catalogue")

var pricePattern = regexp.MustCompile(`^\$\d+\.\d{2}$`)

type Catalogue struct {
	Restaurant   Restaurant    `yaml:"restaurant"`
	Specials     []Special     `yaml:"specials"`
	Testimonials []Testimonial `yaml:"testimonials"`
}

type Restaurant struct {
	Name    string   `yaml:"name"`
	City    string   `yaml:"city"`
	Tagline string   `yaml:"tagline"`
	About   []string `yaml:"about"`
	Contact Contact  `yaml:"contact"`
}

type Contact struct {
	Street   string `yaml:"street"`
	Locality string `yaml:"locality"`
	Phone    string `yaml:"phone"`
	Email    string `yaml:"email"`
}

type Special struct {
	ID          int    `yaml:"id"`
	Title       string `yaml:"title"`
	Price       string `yaml:"price"`
	Description string `yaml:"description"`
	Image       string `yaml:"image"`
}

type Testimonial struct {
	ID     int    `yaml:"id"`
	Name   string `yaml:"name"`
	Rating int    `yaml:"rating"`
	Review string `yaml:"review"`
	Image  string `yaml:"image"`
}

// Stars renders a slice sized to the rating so templates can range over it.
func (t Testimonial) Stars() []struct{} {
	return make([]struct{}, t.Rating)
}

// Parse decodes and validates a catalogue. Unknown keys are rejected.
func Parse(data []byte) (*Catalogue, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c Catalogue
	if err := dec.Decode(&c); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "decode catalogue"), ErrInvalidCatalogue)
	}
	if err := c.validate(); err != nil {
		return nil, errs.Mark(err, ErrInvalidCatalogue)
	}
	return &c, nil
}

var loadDefault = sync.OnceValues(func() (*Catalogue, error) {
	return Parse(defaultCatalogue)
})

// Default returns the catalogue compiled into the binary.
func Default() (*Catalogue, error) {
	return loadDefault()
}

func (c *Catalogue) validate() error {
	if c.Restaurant.Name == "" {
		return errs.New("restaurant name is required")
	}
	for _, s := range c.Specials {
		if s.Title == "" {
			return fmt.Errorf("special %d: title is required", s.ID)
		}
		if !pricePattern.MatchString(s.Price) {
			return fmt.Errorf("special %q: price %q is not in $d.dd form", s.Title, s.Price)
		}
	}
	for _, t := range c.Testimonials {
		if t.Name == "" {
			return fmt.Errorf("testimonial %d: name is required", t.ID)
		}
		if t.Rating < 1 || t.Rating > 5 {
			return fmt.Errorf("testimonial %q: rating %d out of range 1-5", t.Name, t.Rating)
		}
	}
	return nil
}
