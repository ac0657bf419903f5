package testcases

var edgeCases = []TestCase{
	{Name: "single_row", Width: 50, Height: 1, Percentage: 1},
	{Name: "single_column", Width: 1, Height: 50, Percentage: 0.3},
	{Name: "single_pixel", Width: 1, Height: 1, Percentage: 1},
	{Name: "one_row_cap", Width: 40, Height: 10, Percentage: 0.1},
}
