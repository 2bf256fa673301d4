package domain

// BirthMoment is a validated local wall-clock birth time.
// The timezone is implicit: values are interpreted as IST (UTC+5:30)
// during instant conversion. Immutable once constructed.
type BirthMoment struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
}
