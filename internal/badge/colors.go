package badge

import "badgeserver/internal/domain"

func DownloadColor(monthly int64) domain.Colorscheme {
	switch {
	case monthly == 0:
		return domain.ColorRed
	case monthly < 10:
		return domain.ColorYellow
	case monthly < 100:
		return domain.ColorYellowGreen
	case monthly < 1000:
		return domain.ColorGreen
	default:
		return domain.ColorBrightGreen
	}
}

func TipsColor(weekly int64) domain.Colorscheme {
	switch {
	case weekly == 0:
		return domain.ColorRed
	case weekly < 10:
		return domain.ColorYellow
	case weekly < 100:
		return domain.ColorGreen
	default:
		return domain.ColorBrightGreen
	}
}

func CoverageColor(percentage int) domain.Colorscheme {
	switch {
	case percentage < 80:
		return domain.ColorRed
	case percentage < 90:
		return domain.ColorYellow
	case percentage < 95:
		return domain.ColorGreen
	default:
		return domain.ColorBrightGreen
	}
}

// GPAColor maps a Code Climate grade point average (0 to 4).
func GPAColor(score float64) domain.Colorscheme {
	switch {
	case score == 4:
		return domain.ColorBrightGreen
	case score > 3:
		return domain.ColorGreen
	case score > 2:
		return domain.ColorYellowGreen
	case score > 1:
		return domain.ColorYellow
	default:
		return domain.ColorRed
	}
}
