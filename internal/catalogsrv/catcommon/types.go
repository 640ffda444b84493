package catcommon

// Category is the course catalog grouping shown on the site.
type Category string

const (
	CategoryCoreProgramming Category = "CORE Programming"
	CategoryAdvancedIT      Category = "Advanced IT Technologies"
	CategoryTrending        Category = "Trending & Future-Ready Technologies"
	CategorySpecialized     Category = "Specialized Training Programs"
)

// categoryLabels maps categories to the display labels used by the site.
var categoryLabels = map[Category]string{
	CategoryCoreProgramming: "Core Programming",
	CategoryAdvancedIT:      "Advanced IT",
	CategoryTrending:        "Trending Tech",
	CategorySpecialized:     "Specialized Programs",
}

func Categories() []Category {
	return []Category{
		CategoryCoreProgramming,
		CategoryAdvancedIT,
		CategoryTrending,
		CategorySpecialized,
	}
}

func (c Category) IsValid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label returns the short display label for the category, or the raw
// value when no label is registered.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// Level is the difficulty level of a course.
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

func Levels() []Level {
	return []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}
}

func (l Level) IsValid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// Language is the language a course is taught in.
type Language string

const (
	LanguageEnglish Language = "English"
	LanguageHindi   Language = "Hindi"
	LanguageMixed   Language = "Mixed"
)

func Languages() []Language {
	return []Language{LanguageEnglish, LanguageHindi, LanguageMixed}
}

func (l Language) IsValid() bool {
	switch l {
	case LanguageEnglish, LanguageHindi, LanguageMixed:
		return true
	}
	return false
}

// Mode is the delivery mode of a course.
type Mode string

const (
	ModeOnline  Mode = "Online"
	ModeOffline Mode = "Offline"
	ModeHybrid  Mode = "Hybrid"
)

func Modes() []Mode {
	return []Mode{ModeOnline, ModeOffline, ModeHybrid}
}

func (m Mode) IsValid() bool {
	switch m {
	case ModeOnline, ModeOffline, ModeHybrid:
		return true
	}
	return false
}
