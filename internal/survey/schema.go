package survey

import "slices"

// Kind describes how a question is answered.
type Kind string

const (
	KindText   Kind = "text"
	KindEmail  Kind = "email"
	KindSelect Kind = "select"
	KindChoice Kind = "choice"
	KindYesNo  Kind = "yesno"
	KindMulti  Kind = "multi"
)

// Section titles, in display order.
const (
	SectionContact       = "Contact Information"
	SectionOperations    = "Business Operations"
	SectionLegal         = "Legal & Compliance"
	SectionCommunication = "Communication"
	SectionChallenges    = "Biggest Challenges"
	SectionFollowUp      = "Follow-up Interest"
)

// Question is one entry of the survey. Prompt is shown to the respondent,
// Summary is the short label used in the operator notification.
type Question struct {
	Field    string   `json:"field"`
	Prompt   string   `json:"prompt"`
	Summary  string   `json:"summary"`
	Kind     Kind     `json:"kind"`
	Section  string   `json:"section"`
	Options  []string `json:"options,omitempty"`
	Roles    []string `json:"roles,omitempty"`
	Required bool     `json:"required,omitempty"`
}

// AppliesTo reports whether the question is asked for role. Questions without
// roles are asked to everyone.
func (q Question) AppliesTo(role string) bool {
	return len(q.Roles) == 0 || slices.Contains(q.Roles, role)
}

// Section groups questions under a heading.
type Section struct {
	Title     string
	Questions []Question
}

var (
	BusinessTypes = []string{"gas-station", "restaurant", "retail", "auto-service", "grocery", "other"}
	EmployeeCount = []string{"1-5", "6-10", "11-20", "21+"}

	OwnerProblems = []string{
		"staff-scheduling", "communication", "task-management", "vendor-coordination",
		"customer-complaints", "paperwork", "training", "quality-control", "inventory",
		"cash-flow", "regulations", "technology", "other-owner",
	}
	EmployeeProblems = []string{
		"unclear-instructions", "schedule-changes", "poor-communication", "insufficient-training",
		"too-many-tasks", "language-barriers", "inconsistent-policies", "no-feedback",
		"workplace-stress", "equipment-issues", "unfair-treatment", "work-life-balance",
		"other-employee",
	}

	yesNo    = []string{Yes, No}
	owner    = []string{RoleOwner}
	employee = []string{RoleEmployee}
)

var schema = []Question{
	{Field: "name", Prompt: "Your name", Summary: "Name", Kind: KindText, Section: SectionContact, Required: true},
	{Field: "email", Prompt: "Email address", Summary: "Email", Kind: KindEmail, Section: SectionContact, Required: true},
	{Field: "phone", Prompt: "Phone (optional)", Summary: "Phone", Kind: KindText, Section: SectionContact},
	{Field: "role", Prompt: "Which describes you best?", Summary: "Role", Kind: KindChoice, Section: SectionContact,
		Options: []string{RoleOwner, RoleEmployee}, Required: true},
	{Field: "business", Prompt: "What kind of business is it?", Summary: "Business Type", Kind: KindSelect,
		Section: SectionContact, Options: BusinessTypes},
	{Field: "employees", Prompt: "How many employees do you have?", Summary: "Employees", Kind: KindSelect,
		Section: SectionContact, Options: EmployeeCount, Roles: owner},

	{Field: "timeWasterExists", Prompt: "Is there something that eats up hours of your week that shouldn't?",
		Summary: "Time wasters exist", Kind: KindYesNo, Section: SectionOperations, Options: yesNo, Roles: owner},
	{Field: "problemsHappen", Prompt: "In the last month, did a problem happen that cost you time or money?",
		Summary: "Recent problems happened", Kind: KindYesNo, Section: SectionOperations, Options: yesNo, Roles: owner},
	{Field: "thingsFallThrough", Prompt: "When you're away, do things fall through the cracks?",
		Summary: "Things fall through when away", Kind: KindYesNo, Section: SectionOperations, Options: yesNo, Roles: owner},
	{Field: "coordinationHard", Prompt: "Is it hard to keep staff, shifts and vendors coordinated?",
		Summary: "Coordination is hard", Kind: KindYesNo, Section: SectionOperations, Options: yesNo, Roles: owner},

	{Field: "stressfulMoments", Prompt: "Are there moments at work that are stressful or confusing?",
		Summary: "Has stressful/confusing moments", Kind: KindYesNo, Section: SectionOperations, Options: yesNo, Roles: employee},
	{Field: "lastMinuteChanges", Prompt: "Do you often get last-minute changes to your schedule or tasks?",
		Summary: "Experiences last-minute changes", Kind: KindYesNo, Section: SectionOperations, Options: yesNo, Roles: employee},
	{Field: "hardToTrack", Prompt: "Are parts of your job hard to keep track of?",
		Summary: "Hard to track job aspects", Kind: KindYesNo, Section: SectionOperations, Options: yesNo, Roles: employee},

	{Field: "worriedAboutLegal", Prompt: "Do you worry about getting into legal trouble with staff or regulators?",
		Summary: "Worried about legal trouble", Kind: KindYesNo, Section: SectionLegal, Options: yesNo, Roles: owner},
	{Field: "hadLegalIssue", Prompt: "Have you had a legal issue or a close call?",
		Summary: "Had legal issue/close call", Kind: KindYesNo, Section: SectionLegal, Options: yesNo, Roles: owner},
	{Field: "hadLaborComplaint", Prompt: "Has an employee ever filed a labor complaint?",
		Summary: "Had labor complaint", Kind: KindYesNo, Section: SectionLegal, Options: yesNo, Roles: owner},

	{Field: "usesWhatsApp", Prompt: "Do you use WhatsApp or text messages for work?",
		Summary: "Uses WhatsApp/SMS for work", Kind: KindYesNo, Section: SectionCommunication, Options: yesNo},
	{Field: "hasLanguageBarriers", Prompt: "Are there language barriers on your team?",
		Summary: "Has language barriers", Kind: KindYesNo, Section: SectionCommunication, Options: yesNo},
	{Field: "wantsDocumentation", Prompt: "Would better written records of who did what help?",
		Summary: "Wants better documentation", Kind: KindYesNo, Section: SectionCommunication, Options: yesNo},

	{Field: FieldBiggestProblems, Prompt: "What are your biggest headaches? Pick all that apply.",
		Summary: "Selected problems", Kind: KindMulti, Section: SectionChallenges, Options: OwnerProblems, Roles: owner},
	{Field: FieldBiggestProblems, Prompt: "What makes your job harder? Pick all that apply.",
		Summary: "Selected problems", Kind: KindMulti, Section: SectionChallenges, Options: EmployeeProblems, Roles: employee},

	{Field: "interestedInCall", Prompt: "Would you be open to a 15-minute call about this?",
		Summary: "Interested in call", Kind: KindYesNo, Section: SectionFollowUp, Options: yesNo},
}

var sectionOrder = []string{
	SectionContact, SectionOperations, SectionLegal, SectionCommunication, SectionChallenges, SectionFollowUp,
}

// Questions returns the ordered questions asked for role. An unknown role gets
// only the questions shared by both roles.
func Questions(role string) []Question {
	qs := make([]Question, 0, len(schema))
	for _, q := range schema {
		if q.AppliesTo(role) {
			qs = append(qs, q)
		}
	}
	return qs
}

// AllQuestions returns every question, including both role variants.
func AllQuestions() []Question {
	return slices.Clone(schema)
}

// Sections groups Questions(role) by section, skipping empty sections.
func Sections(role string) []Section {
	return groupBySection(Questions(role))
}

// AllSections groups every question, both role variants included.
func AllSections() []Section {
	return groupBySection(schema)
}

func groupBySection(qs []Question) []Section {
	sections := make([]Section, 0, len(sectionOrder))
	for _, title := range sectionOrder {
		var group []Question
		for _, q := range qs {
			if q.Section == title {
				group = append(group, q)
			}
		}
		if len(group) > 0 {
			sections = append(sections, Section{Title: title, Questions: group})
		}
	}
	return sections
}

// QuestionFor looks up the question asking field for role.
func QuestionFor(field, role string) (Question, bool) {
	for _, q := range schema {
		if q.Field == field && q.AppliesTo(role) {
			return q, true
		}
	}
	return Question{}, false
}

// Accepts reports whether token is one of the question's options. Free-text
// questions accept anything.
func (q Question) Accepts(token string) bool {
	if len(q.Options) == 0 {
		return true
	}
	return slices.Contains(q.Options, token)
}

var choiceLabels = map[string]string{
	// Business types
	"gas-station":  "⛽ Gas Station / Convenience Store",
	"restaurant":   "🍕 Restaurant / Food Service",
	"retail":       "🛍️ Retail Store / Shopping",
	"auto-service": "🔧 Auto Repair / Service Business",
	"grocery":      "🛒 Grocery / Market",
	"other":        "🏢 Other Small Business",

	// Owner problems
	"staff-scheduling":    "📅 Staff scheduling and attendance",
	"communication":       "💬 Communication between people",
	"task-management":     "📋 Making sure tasks get completed",
	"vendor-coordination": "🚛 Vendor and supplier coordination",
	"customer-complaints": "🚨 Customer complaints and problems",
	"paperwork":           "📄 Paperwork and record keeping",
	"training":            "🎓 Training new employees",
	"quality-control":     "✅ Quality control and standards",
	"inventory":           "📦 Inventory management",
	"cash-flow":           "💰 Cash flow and payments",
	"regulations":         "⚖️ Regulations and compliance",
	"technology":          "💻 Technology and systems",
	"other-owner":         "🔧 Other",

	// Employee problems
	"unclear-instructions":  "❓ Unclear instructions or expectations",
	"schedule-changes":      "📅 Last-minute schedule changes",
	"poor-communication":    "💬 Poor communication from management",
	"insufficient-training": "🎓 Not enough training for my role",
	"too-many-tasks":        "📋 Too many tasks to keep track of",
	"language-barriers":     "🌐 Language or communication barriers",
	"inconsistent-policies": "📋 Inconsistent rules or policies",
	"no-feedback":           "🔄 Not getting feedback on my work",
	"workplace-stress":      "😰 High stress or pressure at work",
	"equipment-issues":      "🔧 Equipment or technology problems",
	"unfair-treatment":      "⚖️ Feeling treated unfairly",
	"work-life-balance":     "⚖️ Work-life balance issues",
	"other-employee":        "🔧 Other",

	// Roles and employee counts
	RoleOwner:    "👔 Business Owner",
	RoleEmployee: "👷 Employee",
	"1-5":        "1-5 employees",
	"6-10":       "6-10 employees",
	"11-20":      "11-20 employees",
	"21+":        "21+ employees",
	Yes:          "Yes",
	No:           "No",
}

// ChoiceLabel maps a token to its display label, falling back to the token.
func ChoiceLabel(token string) string {
	if label, ok := choiceLabels[token]; ok {
		return label
	}
	return token
}

// FormatAnswer renders a yes/no token with a marker, other values unchanged.
func FormatAnswer(value string) string {
	switch value {
	case Yes:
		return "✅ Yes"
	case No:
		return "❌ No"
	default:
		return value
	}
}
