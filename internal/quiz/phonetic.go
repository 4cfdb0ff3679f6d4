package quiz

import "strings"

// phonetics maps lowercase Italian words and phrases to a stressed
// pronunciation guide.
var phonetics = map[string]string{
	"mi chiamo":       "mee KYAH-moh",
	"allegra":         "ahl-LEH-grah",
	"giovane":         "JOH-vah-neh",
	"gioiosa":         "joh-YOH-zah",
	"grande":          "GRAHN-deh",
	"londra":          "LOHN-drah",
	"germania":        "jehr-MAH-nyah",
	"fa caldo":        "fah KAHL-doh",
	"è nuvoloso":      "eh noo-voh-LOH-zoh",
	"è piovoso":       "eh pyoh-VOH-zoh",
	"sabato":          "SAH-bah-toh",
	"domenica":        "doh-MEH-nee-kah",
	"camminare":       "kahm-mee-NAH-reh",
	"giardinaggio":    "jar-dee-NAHD-joh",
	"felice":          "feh-LEE-cheh",
	"primavera":       "pree-mah-VEH-rah",
	"estate":          "eh-STAH-teh",
	"autunno":         "ow-TOON-noh",
	"inverno":         "een-VEHR-noh",
	"pane":            "PAH-neh",
	"formaggio":       "for-MAHD-joh",
	"pomodori":        "poh-moh-DOH-ree",
	"cocomero":        "koh-KOH-meh-roh",
	"vorrei":          "vor-RAY",
	"quanto costa":    "KWAHN-toh KOH-stah",
	"perché fa caldo": "pehr-KEH fah KAHL-doh",
}

// Pronunciation returns the phonetic guide for word, falling back to the
// word itself.
func Pronunciation(word string) string {
	if p, ok := phonetics[strings.ToLower(strings.TrimSpace(word))]; ok {
		return p
	}
	return word
}
