package domain

// EdgeKind тип ребра графа
type EdgeKind string

const (
	KindSlope EdgeKind = "slope"
	KindLift  EdgeKind = "lift"
)

// Difficulty цветовая категория трассы
type Difficulty string

const (
	DifficultyGreen Difficulty = "green"
	DifficultyBlue  Difficulty = "blue"
	DifficultyRed   Difficulty = "red"
	DifficultyBlack Difficulty = "black"
)

// LiftType категория подъёмника
type LiftType string

const (
	LiftDrag        LiftType = "drag_lift"
	LiftChair       LiftType = "chair_lift"
	LiftGondola     LiftType = "gondola"
	LiftCableCar    LiftType = "cable_car"
	LiftMagicCarpet LiftType = "magic_carpet"
)

// rawDifficulties маппинг OSM piste:difficulty -> цветовая категория
var rawDifficulties = map[string]Difficulty{
	"novice":       DifficultyGreen,
	"easy":         DifficultyBlue,
	"intermediate": DifficultyRed,
	"advanced":     DifficultyBlack,
	"expert":       DifficultyBlack,
	"freeride":     DifficultyBlack,
}

// rawLiftTypes маппинг OSM aerialway -> категория подъёмника
var rawLiftTypes = map[string]LiftType{
	"mixed_lift": LiftGondola,
	"funicular":  LiftGondola,
	"t-bar":      LiftDrag,
	"j-bar":      LiftDrag,
	"platter":    LiftDrag,
	"rope_tow":   LiftDrag,
}

// NormalizeDifficulty приводит сырой OSM-тег к канонической категории.
// Уже канонические значения проходят без изменений; неизвестные теги
// считаются синей трассой, как в пайплайне подготовки данных.
func NormalizeDifficulty(raw string) Difficulty {
	switch Difficulty(raw) {
	case DifficultyGreen, DifficultyBlue, DifficultyRed, DifficultyBlack:
		return Difficulty(raw)
	}
	if d, ok := rawDifficulties[raw]; ok {
		return d
	}
	return DifficultyBlue
}

// NormalizeLiftType приводит сырой OSM-тег к канонической категории подъёмника.
func NormalizeLiftType(raw string) LiftType {
	switch LiftType(raw) {
	case LiftDrag, LiftChair, LiftGondola, LiftCableCar, LiftMagicCarpet:
		return LiftType(raw)
	}
	if t, ok := rawLiftTypes[raw]; ok {
		return t
	}
	return LiftChair
}

// Node представляет физическую точку курорта
type Node struct {
	ID        string
	Elevation float64
	Station   string // пустая строка, если точка не является станцией
}

// IsStation проверяет, привязана ли к точке станция
func (n *Node) IsStation() bool {
	return n.Station != ""
}

// Edge представляет направленную связь между двумя точками:
// трассу (спуск) или подъёмник
type Edge struct {
	ID             string
	Source         string
	Target         string
	Kind           EdgeKind
	Difficulty     Difficulty // только для Kind == KindSlope
	LiftType       LiftType   // только для Kind == KindLift
	Distance       float64
	ElevationDelta float64
	Name           string
	Geometry       [][2]float64 // промежуточные точки, используются только профилем высот
}

// DisplayName возвращает имя ребра для отображения
func (e *Edge) DisplayName() string {
	if e.Name == "" {
		return "Unnamed"
	}
	return e.Name
}
