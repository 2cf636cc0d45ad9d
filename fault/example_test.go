package fault_test

import (
	"fmt"

	"github.com/katalvlaran/faultkin/fault"
)

// ExampleParseMovement shows the tolerant synonym parsing: separators
// and word order do not matter.
func ExampleParseMovement() {
	fmt.Println(fault.ParseMovement("normal + right-lateral"))
	fmt.Println(fault.ParseMovement("dextral normal"))
	fmt.Println(fault.ParseMovement("thrust"))
	fmt.Println(fault.ParseMovement(""))
	fmt.Println(fault.ParseMovement("wobbly"))
	// Output:
	// N-RL
	// N-RL
	// I
	// UND
	// ERROR
}

// ExampleDecodeRecord decodes one spreadsheet row; column names are
// matched through the synonym table regardless of case and separators.
func ExampleDecodeRecord() {
	obs, err := fault.DecodeRecord(map[string]string{
		"N°":               "F-17",
		"Type":             "Striated Plane",
		"Strike":           "125",
		"Dip":              "60",
		"Dip Direction":    "SW",
		"Rake":             "35",
		"Strike Direction": "SE",
		"Type of Movement": "normal dextral",
	})
	if err != nil {
		fmt.Println("decode:", err)
		return
	}

	fmt.Printf("%s: %s\n", obs.ID, obs.Type)
	fmt.Printf("plane %v/%v %s, rake %v from %s, movement %s\n",
		*obs.Plane.StrikeDeg, *obs.Plane.DipDeg, obs.Plane.DipDirection,
		*obs.Striation.RakeDeg, obs.Striation.StrikeDirection, obs.Striation.Movement)
	// Output:
	// F-17: Striated Plane
	// plane 125/60 SW, rake 35 from SE, movement N-RL
}
