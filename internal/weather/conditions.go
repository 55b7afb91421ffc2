package weather

const (
	ConditionSunny        = "sunny"
	ConditionPartlyCloudy = "partly cloudy"
	ConditionCloudy       = "cloudy"
	ConditionRainy        = "rainy"
	ConditionStormy       = "stormy"
)

var conditions = []string{
	ConditionSunny,
	ConditionPartlyCloudy,
	ConditionCloudy,
	ConditionRainy,
	ConditionStormy,
}

func iconFor(condition string) string {
	switch condition {
	case ConditionSunny:
		return "☀️"
	case ConditionPartlyCloudy:
		return "⛅"
	case ConditionCloudy:
		return "☁️"
	case ConditionRainy:
		return "🌧️"
	default:
		return "⛈️"
	}
}
