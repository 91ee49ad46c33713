package booking

type Occasion string

const (
	OccasionBirthday    Occasion = "Birthday"
	OccasionAnniversary Occasion = "Anniversary"
	OccasionOther       Occasion = "Other"
)

func Occasions() []Occasion {
	return []Occasion{OccasionBirthday, OccasionAnniversary, OccasionOther}
}

func ParseOccasion(s string) (Occasion, error) {
	switch o := Occasion(s); o {
	case OccasionBirthday, OccasionAnniversary, OccasionOther:
		return o, nil
	default:
		return "", ErrInvalidOccasion
	}
}

func (o Occasion) String() string {
	return string(o)
}
