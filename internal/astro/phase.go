package astro

import "natal-api/internal/models"

var phaseLabels = map[models.MoonPhase]string{
	models.PhaseNew:          "🌑 Новолуние (новые начинания)",
	models.PhaseFirstQuarter: "🌒 Первая четверть (действие)",
	models.PhaseFull:         "🌕 Полнолуние (результаты)",
	models.PhaseLastQuarter:  "🌖 Последняя четверть (завершение)",
	models.PhaseWaning:       "🌗 Убывающая Луна (анализ)",
}

// Elongation is the Moon's longitude east of the Sun in [0, 360).
func Elongation(sunLon, moonLon float64) float64 {
	return Normalize(moonLon - sunLon)
}

// PhaseOf classifies an elongation. The first four bands are 45° wide; the
// last one spans the whole second half of the cycle.
func PhaseOf(elongation float64) models.MoonPhase {
	e := Normalize(elongation)
	switch {
	case e < 45:
		return models.PhaseNew
	case e < 90:
		return models.PhaseFirstQuarter
	case e < 135:
		return models.PhaseFull
	case e < 180:
		return models.PhaseLastQuarter
	default:
		return models.PhaseWaning
	}
}

// PhaseLabel is the display label of a phase.
func PhaseLabel(p models.MoonPhase) string {
	return phaseLabels[p]
}
