package condition

// Illustration describes the large icon rendered next to the current conditions
type Illustration struct {
	Icon     string `json:"icon"`
	Tone     string `json:"tone"`
	Animated string `json:"animation"`
}

// Icon names match the icon set bundled with the dashboard templates.
const (
	IconSun            = "sun"
	IconMoon           = "moon"
	IconCloud          = "cloud"
	IconCloudSun       = "cloud-sun"
	IconCloudRain      = "cloud-rain"
	IconCloudLightning = "cloud-lightning"
	IconSnowflake      = "snowflake"
	IconCloudFog       = "cloud-fog"
)

// IllustrationFor picks the illustration for a category. Clear and unknown
// conditions switch between sun and moon.
func IllustrationFor(category Category, daytime bool) Illustration {
	switch category {
	case CategoryClear, CategoryDefault:
		if daytime {
			return Illustration{Icon: IconSun, Tone: "text-yellow-400", Animated: "pulse-slow"}
		}
		return Illustration{Icon: IconMoon, Tone: "text-blue-200", Animated: "pulse-slow"}
	case CategoryCloud:
		return Illustration{Icon: IconCloud, Tone: "text-gray-400", Animated: "float"}
	case CategoryRain:
		return Illustration{Icon: IconCloudRain, Tone: "text-blue-500", Animated: "float"}
	case CategoryRainThunder:
		return Illustration{Icon: IconCloudLightning, Tone: "text-yellow-400", Animated: "float"}
	case CategorySnow:
		return Illustration{Icon: IconSnowflake, Tone: "text-blue-200", Animated: "float"}
	case CategoryFog:
		return Illustration{Icon: IconCloudFog, Tone: "text-gray-400", Animated: "float"}
	default:
		return Illustration{Icon: IconSun, Tone: "text-yellow-400", Animated: "pulse-slow"}
	}
}

// Describe classifies a description and resolves its illustration in one step
func Describe(description, localTime string) (Category, bool, Illustration) {
	category := Classify(description)
	daytime := IsDaytime(localTime)
	return category, daytime, IllustrationFor(category, daytime)
}

// forecastIcons are the descriptions with a dedicated forecast card icon
var forecastIcons = map[string]string{
	"céu limpo":        IconSun,
	"nublado":          IconCloud,
	"chuva leve":       IconCloudRain,
	"nuvens dispersas": IconCloudSun,
}

// ForecastIcon returns the small icon used on a forecast card. Descriptions
// without a dedicated icon fall back to their daytime category illustration.
func ForecastIcon(description string) string {
	if icon, ok := forecastIcons[description]; ok {
		return icon
	}
	return IllustrationFor(Classify(description), true).Icon
}

// Backdrop returns the page gradient class for the current conditions
func Backdrop(category Category) string {
	switch category {
	case CategoryClear:
		return "bg-sunny-gradient"
	case CategoryCloud, CategoryFog:
		return "bg-cloudy-gradient"
	case CategoryRain, CategoryRainThunder:
		return "bg-rainy-gradient"
	default:
		return "bg-default-gradient"
	}
}
