// Command export writes the mask test cases, their outlines and the
// resulting masks to JSON for inspection with external tools.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/bubble/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name       string      `json:"name"`
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	Percentage float64     `json:"percentage"`
	Cap        [][]float64 `json:"cap"`
	Tail       [][]float64 `json:"tail"`

	// Depth gives, for every column, the number of cleared pixels.
	Depth []int `json:"depth"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	g, err := tc.Render()
	if err != nil {
		return jsonTestCase{}, err
	}

	m := tc.Masker()
	jtc := jsonTestCase{
		Name:       category + "_" + tc.Name,
		Width:      tc.Width,
		Height:     tc.Height,
		Percentage: tc.Percentage,
		Cap:        pointsToJSON(m.CapOutline(tc.Width, tc.Height, tc.Percentage)),
		Tail:       pointsToJSON(m.TailOutline(tc.Width, tc.Height, tc.Percentage)),
		Depth:      make([]int, tc.Width),
	}
	for column := range tc.Width {
		for row := range tc.Height {
			if g.Pixel(row, column).A == 0 {
				jtc.Depth[column]++
			}
		}
	}
	return jtc, nil
}

func pointsToJSON(pts []vec.Vec2) [][]float64 {
	res := make([][]float64, len(pts))
	for i, p := range pts {
		res[i] = []float64{p.X, p.Y}
	}
	return res
}
