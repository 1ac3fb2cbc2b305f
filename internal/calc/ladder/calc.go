package ladder

import (
	"fmt"
	"math"
	"strings"
)

// Типы лестниц, совпадают с кодами из формы и бота.
const (
	TypeStraight = 1 // прямая
	TypeUShaped  = 2 // П-образная
	TypeLShaped  = 3 // Г-образная
)

// Config задает стандартные элементы и допуски расчета. Значение
// неизменяемое: калькулятор получает свою копию при создании, поэтому
// несколько конфигураций могут жить в одном процессе.
type Config struct {
	MinAngle float64
	MaxAngle float64

	// Стандартные элементы 30x20 см
	StandardStepWidth  float64
	StandardStepHeight float64

	MinStepWidth  float64
	MinStepHeight float64
	MaxStepHeight float64

	MinLadderWidth float64
	MaxHeight      float64
	MaxLength      float64

	MinSteps int
	MaxSteps int

	// Комфортный диапазон для предупреждений
	ComfortMinStepHeight float64
	ComfortMaxStepHeight float64
	ComfortMinStepWidth  float64
	ComfortMaxStepWidth  float64
}

func DefaultConfig() Config {
	return Config{
		MinAngle:             30,
		MaxAngle:             45,
		StandardStepWidth:    30,
		StandardStepHeight:   20,
		MinStepWidth:         25,
		MinStepHeight:        15,
		MaxStepHeight:        25,
		MinLadderWidth:       80,
		MaxHeight:            500,
		MaxLength:            1000,
		MinSteps:             3,
		MaxSteps:             25,
		ComfortMinStepHeight: 17,
		ComfortMaxStepHeight: 23,
		ComfortMinStepWidth:  28,
		ComfortMaxStepWidth:  35,
	}
}

type Calculator struct {
	cfg Config
}

func New(cfg Config) *Calculator {
	return &Calculator{cfg: cfg}
}

type Input struct {
	Height     float64  `json:"height"`
	Length     float64  `json:"length"`
	Width      *float64 `json:"width,omitempty"`
	Angle      *float64 `json:"angle,omitempty"`
	StepHeight *float64 `json:"step_height,omitempty"`
	StepWidth  *float64 `json:"step_width,omitempty"`
	LadderType int      `json:"ladder_type"`
}

type AngleInfo struct {
	Value   *float64 `json:"value"`
	Message string   `json:"message"`
	Status  string   `json:"status"`
}

type StepsInfo struct {
	Count        int     `json:"count"`
	Message      string  `json:"message"`
	ActualHeight float64 `json:"actual_height"`
	ActualWidth  float64 `json:"actual_width"`
}

type LengthInfo struct {
	Value   *float64 `json:"value"`
	Message string   `json:"message"`
}

type Footprint struct {
	HorizontalProjection float64 `json:"horizontal_projection"`
	WidthRequired        float64 `json:"width_required"`
	Description          string  `json:"description"`
}

type Feasibility struct {
	Possible bool     `json:"possible"`
	Issues   []string `json:"issues"`
	Warnings []string `json:"warnings"`
}

type Result struct {
	Error        string       `json:"error,omitempty"`
	Inputs       *Input       `json:"inputs,omitempty"`
	Angle        *AngleInfo   `json:"angle,omitempty"`
	Steps        *StepsInfo   `json:"steps,omitempty"`
	LadderLength *LengthInfo  `json:"ladder_length,omitempty"`
	Footprint    *Footprint   `json:"footprint,omitempty"`
	Feasibility  *Feasibility `json:"feasibility,omitempty"`
	Suggestions  *Suggestions `json:"suggestions,omitempty"`
	Parts        *Parts       `json:"parts,omitempty"`
}

// ValidateInputs проверяет габариты проема. Возвращает пустую строку,
// если все в порядке, иначе все нарушения одной строкой через "; ".
func (c *Calculator) ValidateInputs(height, length float64, width *float64) string {
	var errs []string
	if height <= 0 {
		errs = append(errs, "Высота должна быть положительной")
	}
	if length <= 0 {
		errs = append(errs, "Длина проема должна быть положительной")
	}
	if height > c.cfg.MaxHeight {
		errs = append(errs, fmt.Sprintf("Высота слишком большая (максимум %.0f см)", c.cfg.MaxHeight))
	}
	if length > c.cfg.MaxLength {
		errs = append(errs, fmt.Sprintf("Длина проема слишком большая (максимум %.0f см)", c.cfg.MaxLength))
	}
	if width != nil && *width < c.cfg.MinLadderWidth {
		errs = append(errs, fmt.Sprintf("Ширина проема должна быть не менее %.0f см", c.cfg.MinLadderWidth))
	}
	return strings.Join(errs, "; ")
}

// CalculateAll — полный цикл расчета: валидация проема, угол, ступени,
// длина косоура, габариты, проверка установки, детали. Любой сбой
// возвращается как данные в Result, а не как error: движок всегда отвечает.
func (c *Calculator) CalculateAll(in Input) Result {
	if msg := c.ValidateInputs(in.Height, in.Length, in.Width); msg != "" {
		return Result{Error: msg}
	}

	echo := in
	result := Result{Inputs: &echo}

	angle, angleMsg := c.CalcAngle(in.Height, in.Length, in.Angle)
	result.Angle = &AngleInfo{
		Value:   angle,
		Message: angleMsg,
		Status:  c.CheckAngle(angle),
	}

	steps, stepsMsg, actualHeight, actualWidth := c.CalcSteps(in.Height, in.Length, in.StepHeight, in.StepWidth)
	if steps == nil {
		// Ступени не рассчитались — дальше считать нечего,
		// но пользователю сразу предлагаем рабочие варианты.
		sug := c.SuggestParams(in.Height, in.Length, in.Width)
		return Result{Error: stepsMsg, Suggestions: &sug}
	}
	result.Steps = &StepsInfo{
		Count:        *steps,
		Message:      stepsMsg,
		ActualHeight: round2(*actualHeight),
		ActualWidth:  round2(*actualWidth),
	}

	ladderLength, lengthMsg := c.CalcLength(in.Height, in.Length, angle)
	result.LadderLength = &LengthInfo{Value: ladderLength, Message: lengthMsg}

	footprint, fpErr := c.CalcFootprint(*steps, *actualWidth, in.LadderType)
	projection := 0.0
	if fpErr == nil {
		result.Footprint = &footprint
		projection = footprint.HorizontalProjection
	}

	feasibility := c.CheckFeasibility(in.Length, in.Width, angle, *steps, *actualWidth, *actualHeight, projection)
	result.Feasibility = &feasibility

	if !feasibility.Possible {
		sug := c.SuggestParams(in.Height, in.Length, in.Width)
		result.Suggestions = &sug
	}

	parts := c.CalcParts(*steps, in.LadderType)
	result.Parts = &parts

	return result
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
