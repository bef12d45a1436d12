package domain

// Exclusions множество категорий трасс, закрытых для маршрута
type Exclusions map[Difficulty]bool

// NewExclusions собирает множество исключений из списка категорий
func NewExclusions(difficulties ...Difficulty) Exclusions {
	excl := make(Exclusions, len(difficulties))
	for _, d := range difficulties {
		excl[d] = true
	}
	return excl
}

// Contains проверяет, исключена ли категория
func (e Exclusions) Contains(d Difficulty) bool {
	return e[d]
}

// Cost возвращает время прохождения ребра в минутах.
//
// Спуск: distance / скорость категории. Исключённая категория непроходима,
// стоимость Infinity. Подъёмник: distance / скорость типа плюс фиксированное
// ожидание посадки. Исключения на подъёмники не действуют.
func Cost(edge *Edge, exclusions Exclusions) float64 {
	switch edge.Kind {
	case KindSlope:
		if exclusions.Contains(edge.Difficulty) {
			return Infinity
		}
		return edge.Distance / SlopeSpeed(edge.Difficulty)

	case KindLift:
		return edge.Distance/LiftSpeed(edge.LiftType) + LiftQueuePenalty

	default:
		// Build не пропускает рёбра неизвестного типа, ветка оставлена
		// как безопасный дефолт
		return edge.Distance / DefaultLiftSpeed
	}
}
