package langdetect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"spanish", "Hola, ¿cómo estás? Me gustaría aprender a cocinar comida tradicional con mi familia.", "es"},
		{"spanish greeting", "Buenos días, ¿cómo estás hoy? Espero que tengas un día maravilloso con tu familia.", "es"},
		{"portuguese", "Bom dia, você gostaria de ir ao cinema comigo hoje à noite? Não esqueça os bilhetes.", "pt"},
		{"italian", "Buongiorno, vorrei prenotare un tavolo per due persone questa sera, per favore.", "it"},
		{"french", "Bonjour, je voudrais réserver une table pour deux personnes ce soir s'il vous plaît.", "fr"},
		{"german", "Guten Morgen, ich möchte heute Abend mit meinen Freunden ins Kino gehen.", "de"},
		{"russian", "Здравствуйте, я хотел бы заказать столик на двоих на сегодняшний вечер.", "ru"},
		{"tagalog", "Magandang umaga po, gusto ko pong bumili ng dalawang tiket para sa sine mamayang gabi.", "fil"},
		{"empty", "   ", "en"},
		{"digits only", "12345 67890", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(tt.text)
			assert.Equal(t, tt.want, got.Code)
		})
	}
}

func TestDetectReliability(t *testing.T) {
	got := Detect("Buenos días, ¿cómo estás hoy? Espero que tengas un día maravilloso con tu familia.")
	assert.Equal(t, "es", got.Code)
	assert.True(t, got.Reliable)
	assert.Greater(t, got.Confidence, 0.5)

	empty := Detect("")
	assert.False(t, empty.Reliable)
	assert.Zero(t, empty.Confidence)
}
