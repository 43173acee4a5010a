package health

import (
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// AdviceKind identifies which advice flow produced a request.
type AdviceKind string

// Advice kinds.
const (
	KindSleep     AdviceKind = "sleep"
	KindBMI       AdviceKind = "bmi"
	KindNutrition AdviceKind = "nutrition"
)

// Origin records where an advice text came from.
type Origin string

// Advice origins.
const (
	OriginRemote   Origin = "remote"
	OriginFallback Origin = "fallback"
)

// SleepInput holds the parameters of a sleep analysis.
type SleepInput struct {
	Hours   float64
	Quality int
}

// BMIInput holds the parameters of a BMI analysis.
type BMIInput struct {
	WeightKg float64
	HeightCm float64
}

// NutritionInput holds the parameters of a nutrition plan.
type NutritionInput struct {
	Diet     string
	Goal     string
	Calories float64
}

// AdviceRequest is everything the advisor needs to ask the remote model for
// advice, and everything it needs to answer without it.
type AdviceRequest struct {
	Temperature *float64
	Params      map[string]any
	Kind        AdviceKind
	SystemRole  string
	Prompt      string
	// Preamble is prepended to remote text before display.
	Preamble string
	Fallback string
	ID       uuid.UUID
}

// AdviceResult is the text shown to the user for one request.
type AdviceResult struct {
	// Err is the remote failure that forced a fallback. Nil when Origin is remote.
	Err       error
	Kind      AdviceKind
	Text      string
	Origin    Origin
	RequestID uuid.UUID
}

// IsFallback reports whether the text is the canned fallback.
func (r AdviceResult) IsFallback() bool {
	return r.Origin == OriginFallback
}

// RemoteResult builds a result from generated text.
func RemoteResult(req AdviceRequest, text string) AdviceResult {
	return AdviceResult{
		RequestID: req.ID,
		Kind:      req.Kind,
		Text:      req.Preamble + text,
		Origin:    OriginRemote,
	}
}

// FallbackResult builds a result from the request's fallback template.
func FallbackResult(req AdviceRequest, cause error) AdviceResult {
	return AdviceResult{
		RequestID: req.ID,
		Kind:      req.Kind,
		Text:      req.Fallback,
		Origin:    OriginFallback,
		Err:       cause,
	}
}

// NewSleepRequest builds the advice request for a sleep analysis.
func NewSleepRequest(in SleepInput) AdviceRequest {
	return AdviceRequest{
		ID:          uuid.New(),
		Kind:        KindSleep,
		SystemRole:  sleepRole,
		Prompt:      sleepPrompt(in),
		Temperature: temperature(0.5),
		Params: map[string]any{
			"sleep_hours":   in.Hours,
			"sleep_quality": in.Quality,
		},
		Fallback: SleepFallback(in),
	}
}

// NewBMIRequest builds the advice request for an already computed BMI.
func NewBMIRequest(in BMIInput, result BMIResult) AdviceRequest {
	return AdviceRequest{
		ID:         uuid.New(),
		Kind:       KindBMI,
		SystemRole: bmiRole,
		Prompt:     bmiPrompt(result),
		Params: map[string]any{
			"weight_kg": in.WeightKg,
			"height_cm": in.HeightCm,
			"bmi":       result.Rounded(),
			"category":  string(result.Category),
		},
		Preamble: bmiPreamble(result),
		Fallback: BMIFallback(result),
	}
}

// NewNutritionRequest builds the advice request for a nutrition plan.
func NewNutritionRequest(in NutritionInput) AdviceRequest {
	return AdviceRequest{
		ID:          uuid.New(),
		Kind:        KindNutrition,
		SystemRole:  nutritionRole,
		Prompt:      nutritionPrompt(in),
		Temperature: temperature(0.5),
		Params: map[string]any{
			"calorie_intake":     in.Calories,
			"dietary_preference": in.Diet,
			"health_goal":        in.Goal,
		},
		Fallback: NutritionFallback(in),
	}
}

// FormatNumber prints a float the way the readings are echoed back to the
// user: shortest round-trip digits, whole numbers keep a ".0" (6.0, 72.5,
// 2000.0), and very large or small magnitudes switch to exponent form.
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	if v != 0 {
		sci := strconv.FormatFloat(v, 'e', -1, 64)
		exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
		if err == nil && (exp < -4 || exp >= 16) {
			return sci
		}
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

func temperature(v float64) *float64 {
	return &v
}
