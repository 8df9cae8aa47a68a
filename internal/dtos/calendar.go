package dtos

type HijriResponse struct {
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	Day       int    `json:"day"`
	MonthName string `json:"month_name"`
}

type HijriDateResponse struct {
	CivilDate string        `json:"civil_date"`
	Hijri     HijriResponse `json:"hijri"`
	IsRamadan bool          `json:"is_ramadan"`
}
