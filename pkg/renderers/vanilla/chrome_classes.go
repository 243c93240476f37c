package vanilla

// ChromeClass is a typed identifier for the semantic CSS classes the trial
// template emits.
type ChromeClass string

const (
	ClassWrapper   ChromeClass = "surveyslider-wrapper"
	ClassContainer ChromeClass = "surveyslider-container"
	ClassPreamble  ChromeClass = "surveyslider-preamble"
	ClassForm      ChromeClass = "surveyslider-form"
	ClassStimulus  ChromeClass = "surveyslider-stimulus"
	ClassStatement ChromeClass = "surveyslider-statement"
	ClassSideLabel ChromeClass = "surveyslider-side-label"
	ClassSlider    ChromeClass = "surveyslider-slider"
	ClassTick      ChromeClass = "surveyslider-tick"
	ClassComment   ChromeClass = "surveyslider-comment"
	ClassErrors    ChromeClass = "surveyslider-errors"
	ClassSubmit    ChromeClass = "surveyslider-next"
)

// defaultChromeClasses maps every chrome class to itself; overrides replace
// entries by key.
func defaultChromeClasses() map[ChromeClass]string {
	classes := []ChromeClass{
		ClassWrapper, ClassContainer, ClassPreamble, ClassForm, ClassStimulus,
		ClassStatement, ClassSideLabel, ClassSlider, ClassTick, ClassComment,
		ClassErrors, ClassSubmit,
	}
	out := make(map[ChromeClass]string, len(classes))
	for _, class := range classes {
		out[class] = string(class)
	}
	return out
}

// chromeContext exposes the classes to templates under short keys
// ("wrapper", "slider", ...).
func chromeContext(classes map[ChromeClass]string) map[string]any {
	out := make(map[string]any, len(classes))
	for class, value := range classes {
		key := string(class)[len("surveyslider-"):]
		if key == "side-label" {
			key = "side_label"
		}
		out[key] = value
	}
	return out
}
