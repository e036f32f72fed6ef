package i18n

import (
	"errors"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/DoyleJ11/map-veto/internal/engine"
)

// Message keys double as the English text.
const (
	MsgTitle          = "CSGO Map Picker"
	MsgTeam1          = "Team 1"
	MsgTeam2          = "Team 2"
	MsgTeam1Hint      = "Enter the first team's name"
	MsgTeam2Hint      = "Enter the second team's name"
	MsgStart          = "Start"
	MsgEmptyTeam      = "Please enter both team names."
	MsgDuplicateTeam  = "Team names cannot be the same."
	MsgCommaHint      = "Avoid commas in team names; they separate names in links."
	MsgMapSelection   = "Map Selection"
	MsgNextAction     = "Next action: %s"
	MsgNextTeam       = "Next team: %s"
	MsgBan            = "Ban"
	MsgPick           = "Pick"
	MsgBannedBy       = "Banned by %s"
	MsgPickedBy       = "Picked by %s"
	MsgVetoDone       = "Map Selection Complete"
	MsgToSides        = "Continue to Side Selection"
	MsgSideSelection  = "Side Selection"
	MsgSideFor        = "Side selection for %s"
	MsgSidesDone      = "Side Selection Complete"
	MsgTeam           = "Team: %s"
	MsgChosenSide     = "Chosen side: %s"
	MsgDeciderNote    = "Note: the side on the third map is decided by the score differential of the first two maps."
	MsgTerrorist      = "Terrorist"
	MsgCounter        = "Counter-Terrorist"
	MsgNoTeams        = "No teams were provided."
	MsgStartOver      = "Start over"
	MsgTSide          = "T Side"
	MsgCTSide         = "CT Side"
	MsgUnknownFailure = "Something went wrong."
)

var turkish = map[string]string{
	MsgTeam1:          "1. Takım",
	MsgTeam2:          "2. Takım",
	MsgTeam1Hint:      "1. Takım ismini giriniz",
	MsgTeam2Hint:      "2. Takım ismini giriniz",
	MsgStart:          "Başla",
	MsgEmptyTeam:      "Lütfen her iki takım ismini de giriniz.",
	MsgDuplicateTeam:  "Takım isimleri aynı olamaz.",
	MsgCommaHint:      "Takım isimlerinde virgül kullanmayınız; bağlantılarda isimleri ayırır.",
	MsgMapSelection:   "Harita Seçimi",
	MsgNextAction:     "Sıradaki İşlem: %s",
	MsgNextTeam:       "Sıradaki Takım: %s",
	MsgBan:            "Banlama",
	MsgPick:           "Seçim",
	MsgBannedBy:       "%s tarafından banlandı",
	MsgPickedBy:       "%s tarafından seçildi",
	MsgVetoDone:       "Harita Seçimi Tamamlandı",
	MsgToSides:        "Side Seçimine Geç",
	MsgSideSelection:  "Side Seçimi",
	MsgSideFor:        "%s için Side Seçimi",
	MsgSidesDone:      "Side Seçimi Tamamlandı",
	MsgTeam:           "Takım: %s",
	MsgChosenSide:     "Seçilen Side: %s",
	MsgDeciderNote:    "Not: 3. haritanın side seçimi ilk iki maçın averajına göre belirlenecektir.",
	MsgNoTeams:        "Takım bilgisi bulunamadı.",
	MsgStartOver:      "Baştan başla",
	MsgUnknownFailure: "Bir hata oluştu.",
}

var supported = []language.Tag{language.English, language.Turkish}

// Translator picks a printer per request from Accept-Language.
type Translator struct {
	matcher  language.Matcher
	catalog  catalog.Catalog
	fallback language.Tag
}

func New(defaultLang string) (*Translator, error) {
	fallback, err := language.Parse(defaultLang)
	if err != nil {
		return nil, err
	}

	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, msg := range turkish {
		if err := b.SetString(language.Turkish, key, msg); err != nil {
			return nil, err
		}
	}

	m := language.NewMatcher(supported)
	_, idx, _ := m.Match(fallback)

	return &Translator{
		matcher:  m,
		catalog:  b,
		fallback: supported[idx],
	}, nil
}

// Printer returns a printer for the best supported language in accept.
func (t *Translator) Printer(accept string) *message.Printer {
	return message.NewPrinter(t.Lang(accept), message.Catalog(t.catalog))
}

func (t *Translator) Lang(accept string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(tags) == 0 {
		return t.fallback
	}
	_, idx, conf := t.matcher.Match(tags...)
	if conf == language.No {
		return t.fallback
	}
	return supported[idx]
}

// ErrorKey maps a team-entry error to its message key.
func ErrorKey(err error) string {
	switch {
	case errors.Is(err, engine.ErrEmptyTeamName):
		return MsgEmptyTeam
	case errors.Is(err, engine.ErrDuplicateTeamName):
		return MsgDuplicateTeam
	default:
		return MsgUnknownFailure
	}
}
