package model

// PeriodCount is one time bucket of an analytics series.
type PeriodCount struct {
	Period string `json:"period"`
	Count  int64  `json:"count"`
}
