package testcases

var capCases = []TestCase{
	{Name: "square_default", Width: 100, Height: 100, Percentage: 0.3},
	{Name: "square_half", Width: 100, Height: 100, Percentage: 0.5},
	{Name: "square_full", Width: 100, Height: 100, Percentage: 1},
	{Name: "landscape", Width: 200, Height: 150, Percentage: 0.5},
	{Name: "portrait", Width: 64, Height: 256, Percentage: 0.3},
	{Name: "odd_width", Width: 99, Height: 80, Percentage: 0.4},
}
