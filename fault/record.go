// Package fault: string-keyed record decoding. Hosts parse CSV (or any
// tabular source) themselves and hand each row over as a
// map[column name]raw value; DecodeRecord normalizes the column names,
// maps synonyms, and decodes the values into an Observation.
package fault

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// columnSynonyms maps normalized column names to canonical field keys.
// Unknown columns are ignored so hosts can carry extra display columns.
var columnSynonyms = map[string]string{
	"id": "id", "n°": "id", "no": "id", "label": "id", "faultid": "id", "number": "id",

	"type": "type", "datatype": "type", "subtype": "type",

	"strike": "strike", "azimuth": "strike", "az": "strike", "strikeazimuth": "strike",

	"dip": "dip", "dipangle": "dip",

	"dipdirection": "dipdirection", "dipdir": "dipdirection", "dipquadrant": "dipdirection",

	"rake": "rake", "pitch": "rake",

	"strikedirection": "strikedirection", "strikedir": "strikedirection",
	"rakequadrant": "strikedirection", "rakedirection": "strikedirection",

	"trend": "trend", "striationtrend": "trend", "striatrend": "trend",

	"typeofmovement": "movement", "movement": "movement", "sense": "movement",
	"senseofmovement": "movement", "kinematics": "movement",

	"frictionmin": "frictionmin", "frictionanglemin": "frictionmin", "minfriction": "frictionmin",
	"frictionmax": "frictionmax", "frictionanglemax": "frictionmax", "maxfriction": "frictionmax",

	"sigma1normalmin": "sigma1min", "sigma1nmin": "sigma1min", "anglesigma1nmin": "sigma1min",
	"sigma1normalmax": "sigma1max", "sigma1nmax": "sigma1max", "anglesigma1nmax": "sigma1max",
}

// rawRecord is the flat decode target; mapstructure tags name the
// canonical field keys produced by column normalization.
type rawRecord struct {
	ID              string         `mapstructure:"id"`
	Type            DataType       `mapstructure:"type"`
	Strike          *float64       `mapstructure:"strike"`
	Dip             *float64       `mapstructure:"dip"`
	DipDirection    Direction      `mapstructure:"dipdirection"`
	Rake            *float64       `mapstructure:"rake"`
	StrikeDirection Direction      `mapstructure:"strikedirection"`
	Trend           *float64       `mapstructure:"trend"`
	Movement        TypeOfMovement `mapstructure:"movement"`
	FrictionMin     *float64       `mapstructure:"frictionmin"`
	FrictionMax     *float64       `mapstructure:"frictionmax"`
	Sigma1Min       *float64       `mapstructure:"sigma1min"`
	Sigma1Max       *float64       `mapstructure:"sigma1max"`
}

// Decode target types recognized by the hook.
var (
	typeDirection = reflect.TypeOf(Direction(0))
	typeMovement  = reflect.TypeOf(TypeOfMovement(0))
	typeDataType  = reflect.TypeOf(DataType(0))
)

// decodeHook parses strings into the domain enums and into numeric
// fields. Numeric text accepts a decimal comma (European field sheets).
func decodeHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String {
		return data, nil
	}
	s := data.(string)

	switch to {
	case typeDirection:
		return ParseDirection(s), nil
	case typeMovement:
		return ParseMovement(s), nil
	case typeDataType:
		return ParseDataType(s), nil
	}

	if to.Kind() == reflect.Float64 {
		f, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, ErrBadNumeric)
		}

		return f, nil
	}

	return data, nil
}

// DecodeRecord turns one string-keyed record into an Observation.
// Column names are case- and separator-insensitive and mapped through
// the synonym table; empty values are treated as absent. A lone
// interval bound is rejected with ErrHalfInterval; unparseable numeric
// text is rejected with ErrBadNumeric (wrapped with the column name).
func DecodeRecord(record map[string]string) (Observation, error) {
	canonical := make(map[string]string, len(record))
	for col, val := range record {
		key, ok := columnSynonyms[normalizeToken(col)]
		if !ok {
			continue // unknown column: host-side extra, ignore
		}
		if strings.TrimSpace(val) == "" {
			continue // absent value: leave the field nil / Und
		}
		canonical[key] = val
	}

	var raw rawRecord
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     &raw,
		DecodeHook: mapstructure.DecodeHookFuncType(decodeHook),
	})
	if err != nil {
		return Observation{}, fmt.Errorf("fault: build decoder: %w", err)
	}
	if err = dec.Decode(canonical); err != nil {
		return Observation{}, fmt.Errorf("fault: decode record: %w", err)
	}

	friction, err := buildInterval("friction angle", raw.FrictionMin, raw.FrictionMax)
	if err != nil {
		return Observation{}, err
	}
	sigma1, err := buildInterval("sigma1-to-normal angle", raw.Sigma1Min, raw.Sigma1Max)
	if err != nil {
		return Observation{}, err
	}

	return Observation{
		ID:   raw.ID,
		Type: raw.Type,
		Plane: Plane{
			StrikeDeg:    raw.Strike,
			DipDeg:       raw.Dip,
			DipDirection: raw.DipDirection,
		},
		Striation: Striation{
			RakeDeg:         raw.Rake,
			StrikeDirection: raw.StrikeDirection,
			TrendDeg:        raw.Trend,
			Movement:        raw.Movement,
		},
		FrictionAngle: friction,
		Sigma1Normal:  sigma1,
	}, nil
}

// buildInterval assembles an optional interval from its two bounds:
// both present, or neither.
func buildInterval(what string, lo, hi *float64) (*Interval, error) {
	switch {
	case lo == nil && hi == nil:
		return nil, nil
	case lo == nil || hi == nil:
		return nil, fmt.Errorf("%s: %w", what, ErrHalfInterval)
	default:
		return &Interval{LowerDeg: *lo, UpperDeg: *hi}, nil
	}
}
