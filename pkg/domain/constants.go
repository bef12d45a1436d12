package domain

import "math"

// Математические константы
const (
	Epsilon  = 1e-9
	Infinity = math.MaxFloat64
)

// Скорости спуска по категориям трасс, метры в минуту
var slopeSpeeds = map[Difficulty]float64{
	DifficultyGreen: 200,
	DifficultyBlue:  250,
	DifficultyRed:   300,
	DifficultyBlack: 200,
}

// Скорости подъёмников по категориям, метры в минуту
var liftSpeeds = map[LiftType]float64{
	LiftDrag:        100,
	LiftChair:       150,
	LiftGondola:     200,
	LiftCableCar:    250,
	LiftMagicCarpet: 50,
}

// Параметры модели времени
const (
	LiftQueuePenalty  = 3.0 // минуты ожидания на посадке
	DefaultSlopeSpeed = 250 // скорость синей трассы
	DefaultLiftSpeed  = 150 // скорость кресельного подъёмника
)

// SlopeSpeed возвращает скорость спуска для категории трассы
func SlopeSpeed(d Difficulty) float64 {
	if s, ok := slopeSpeeds[d]; ok {
		return s
	}
	return DefaultSlopeSpeed
}

// LiftSpeed возвращает скорость подъёмника для его категории
func LiftSpeed(t LiftType) float64 {
	if s, ok := liftSpeeds[t]; ok {
		return s
	}
	return DefaultLiftSpeed
}

// FloatEquals сравнивает два float64 с учётом Epsilon
func FloatEquals(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// IsInfinite проверяет, является ли стоимость непроходимой
func IsInfinite(v float64) bool {
	return v >= Infinity
}
