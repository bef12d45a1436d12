package routing

import "github.com/ThomasMeMan2/skinavigator/pkg/domain"

// Step один участок маршрута, соответствует пройденному ребру
type Step struct {
	EdgeID         string            `json:"edgeId"`
	Name           string            `json:"name"`
	Kind           domain.EdgeKind   `json:"kind"`
	Difficulty     domain.Difficulty `json:"difficulty,omitempty"`
	LiftType       domain.LiftType   `json:"liftType,omitempty"`
	Distance       float64           `json:"distance"`
	ElevationDelta float64           `json:"elevationDelta"`
	Duration       float64           `json:"duration"` // минуты, округлено до 0.1
	Source         string            `json:"source"`
	Target         string            `json:"target"`
	Geometry       [][2]float64      `json:"geometry,omitempty"`
}

// Summary сводка по маршруту
type Summary struct {
	Distance  int `json:"distance"` // метры
	Duration  int `json:"duration"` // минуты
	Ascent    int `json:"ascent"`   // метры набора высоты
	Descent   int `json:"descent"`  // метры сброса высоты
	StepCount int `json:"stepCount"`
}

// ProfilePoint одна точка профиля высот
type ProfilePoint struct {
	Distance   float64           `json:"distance"` // метры от начала маршрута
	Elevation  float64           `json:"elevation"`
	Node       bool              `json:"node"` // реальный узел графа, а не интерполяция
	Kind       domain.EdgeKind   `json:"kind,omitempty"`
	Difficulty domain.Difficulty `json:"difficulty,omitempty"`
}

// Route результат одного решения: путь, шаги, сводка и профиль высот.
// Создаётся заново на каждый запрос и после этого не изменяется.
type Route struct {
	Path    []string       `json:"path"`
	Steps   []Step         `json:"steps"`
	Summary Summary        `json:"summary"`
	Profile []ProfilePoint `json:"profile"`
}

// LocationEntry точка, которую пользователь может выбрать началом или концом
type LocationEntry struct {
	NodeID string `json:"nodeId"`
	Label  string `json:"label"`
}

// LocationIndex пять списков выбираемых точек курорта
type LocationIndex struct {
	Stations     []LocationEntry `json:"stations"`
	SlopeTops    []LocationEntry `json:"slopeTops"`
	SlopeBottoms []LocationEntry `json:"slopeBottoms"`
	LiftBottoms  []LocationEntry `json:"liftBottoms"`
	LiftTops     []LocationEntry `json:"liftTops"`
}
