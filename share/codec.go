// Package share encodes a configuration, together with its rendering choices,
// into the single URL parameter which share links carry.
//
// The encoding is URL-safe base64 of the JSON form of a State. Decoding is
// lenient: it accepts any flavour of base64, upper case axes, numeric ids, and
// the older format in which a speed was a plain number rather than a fraction.
package share

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"

	"github.com/cloudy-native/lucid"
)

// Param is the name of the URL query parameter which holds a share code.
const Param = "config"

// The most decimal places kept when converting a plain number speed into a
// fraction.
const maxSpeedDecimals = 6

// ErrEmpty is returned when decoding an empty share code.
var ErrEmpty = fmt.Errorf("%w: empty share code", lucid.ErrInvalidArgument)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "share",
})

var encodings = []*base64.Encoding{
	base64.RawURLEncoding,
	base64.URLEncoding,
	base64.StdEncoding,
	base64.RawStdEncoding,
}

// Encode returns the share code for the state.
func Encode(s State) (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("failed to marshal state: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(data), nil
}

// Decode parses a share code. The segments must be valid, but unknown
// environment and material names are replaced by the defaults.
func Decode(code string) (State, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return State{}, ErrEmpty
	}

	var data []byte
	var err error
	for _, enc := range encodings {
		data, err = enc.DecodeString(code)
		if err == nil {
			break
		}
	}
	if err != nil {
		return State{}, fmt.Errorf("%w: failed to decode base64: %w", lucid.ErrInvalidArgument, err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return State{}, fmt.Errorf("%w: failed to unmarshal state: %w", lucid.ErrInvalidArgument, err)
	}

	return FromMap(raw)
}

// DecodeOrDefault parses a share code, or returns the default state if the code
// is missing or can't be decoded. The second return value is true when the
// default was used.
func DecodeOrDefault(code string) (State, bool) {
	s, err := Decode(code)
	if err != nil {
		if !errors.Is(err, ErrEmpty) {
			log.Warnf("using default state: %s", err)
		}
		return DefaultState(), true
	}

	return s, false
}

// FromMap builds a state from loosely typed data, such as decoded JSON or YAML.
// Errors wrap lucid.ErrInvalidArgument or lucid.ErrInvalidSegment.
func FromMap(raw map[string]interface{}) (State, error) {
	var s State

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.ComposeDecodeHookFunc(axisHook, speedHook),
		WeaklyTypedInput: true,
		TagName:          "json",
		Result:           &s,
	})
	if err != nil {
		return State{}, err
	}

	if err := dec.Decode(raw); err != nil {
		return State{}, fmt.Errorf("%w: failed to decode state: %w", lucid.ErrInvalidArgument, err)
	}

	for i := range s.Segments {
		if s.Segments[i].ID == "" {
			s.Segments[i].ID = uuid.NewString()
		}
	}

	if err := s.Segments.Validate(); err != nil {
		return State{}, err
	}

	return s.Normalize(), nil
}

// URL returns base with the share code for s in its query string. Any other
// query parameters are kept.
func URL(base string, s State) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid base url: %w", err)
	}

	code, err := Encode(s)
	if err != nil {
		return "", err
	}

	q := u.Query()
	q.Set(Param, code)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// FromURL returns the state in the query string of a share link, or the
// default state if there isn't a usable one.
func FromURL(raw string) (State, bool) {
	u, err := url.Parse(raw)
	if err != nil {
		log.Warnf("using default state: invalid url: %s", err)
		return DefaultState(), true
	}

	return DecodeOrDefault(u.Query().Get(Param))
}

// Key returns a stable key for the shape of a configuration, ignoring segment
// ids and unreduced speeds, so that equivalent configurations share it.
func Key(c lucid.Configuration) string {
	h := sha256.New()
	for _, s := range c {
		r := s.Speed.Reduced()
		fmt.Fprintf(h, "%s|%s|%d/%d;", s.Axis, strconv.FormatFloat(s.Length, 'g', -1, 64), r.Num, r.Den)
	}

	return hex.EncodeToString(h.Sum(nil))[:32]
}

func axisHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != reflect.TypeOf(lucid.Axis("")) || from.Kind() != reflect.String {
		return data, nil
	}

	return strings.ToLower(strings.TrimSpace(data.(string))), nil
}

// speedHook accepts speeds which are plain numbers ("0.25", 0.25) or strings
// of the form "1/4", as well as the usual {num, den} objects.
func speedHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != reflect.TypeOf(lucid.Speed{}) {
		return data, nil
	}

	switch v := data.(type) {
	case float64:
		return speedFromFloat(v)

	case int:
		return lucid.MakeSpeed(int64(v), 1), nil

	case int64:
		return lucid.MakeSpeed(v, 1), nil

	case string:
		return speedFromString(v)
	}

	return data, nil
}

func speedFromString(s string) (lucid.Speed, error) {
	s = strings.TrimSpace(s)

	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(num), 10, 64)
		if err != nil {
			return lucid.Speed{}, fmt.Errorf("invalid speed %q: %w", s, err)
		}

		d, err := strconv.ParseInt(strings.TrimSpace(den), 10, 64)
		if err != nil {
			return lucid.Speed{}, fmt.Errorf("invalid speed %q: %w", s, err)
		}

		return lucid.MakeSpeed(n, d), nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return lucid.Speed{}, fmt.Errorf("invalid speed %q: %w", s, err)
	}

	return speedFromFloat(f)
}

// speedFromFloat converts a decimal speed into the fraction it was written as,
// e.g. 0.25 becomes 1/4. Anything past maxSpeedDecimals places is rounded.
func speedFromFloat(f float64) (lucid.Speed, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return lucid.Speed{}, fmt.Errorf("invalid speed %v", f)
	}

	decimals := 0
	str := strconv.FormatFloat(f, 'f', -1, 64)
	if _, frac, ok := strings.Cut(str, "."); ok {
		decimals = len(frac)
	}
	if decimals > maxSpeedDecimals {
		decimals = maxSpeedDecimals
	}

	den := math.Pow10(decimals)
	num := math.Round(f * den)
	if math.Abs(num) > math.MaxInt64/2 {
		return lucid.Speed{}, fmt.Errorf("speed %v is too large", f)
	}

	return lucid.MakeSpeed(int64(num), int64(den)).Reduced(), nil
}
