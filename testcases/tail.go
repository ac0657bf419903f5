package testcases

var tailCases = []TestCase{
	// narrow images thicken the tail to the right
	{Name: "narrow", Width: 10, Height: 40, Percentage: 0.5},
	{Name: "wide", Width: 320, Height: 80, Percentage: 0.5},
	{Name: "thick", Width: 100, Height: 100, Percentage: 0.5,
		Tail: Tail{Start: 110, End: 160, Thickness: 0.25}},
	{Name: "short_window", Width: 100, Height: 100, Percentage: 0.5,
		Tail: Tail{Start: 120, End: 130, Thickness: 0.1}},
}
