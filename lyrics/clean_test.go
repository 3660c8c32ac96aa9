package lyrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var dirty = []string{
	"42 Contributors\nTranslations\nEspañol\nRead More\nParanoid Android Lyrics\n[Intro]\nPlease could you stop the noise?\n\n\n\nI'm trying to get some rest\nEmbed",
	"[Verse 1]\r\nshe walks in beauty\r\nlike the night\r\n[Chorus]\r\n   Of cloudless climes,    and starry skies   \r\n",
	"Hey. You. Out there in the cold, getting lonely, getting old\nCan you feel me?\n\n\n\n\nShare URL\nCopy",
	"   \n\n  single line  \n\n  ",
	"",
	"Café con leche.Mañana",
	"Canción Lyrics\nla noche es larga\ny yo sigo aquí",
	"Björk Lyrics\nJóga\nemotional landscapes",
	"夜に駆ける Lyrics\n沈むように溶けてゆくように",
}

func BenchmarkClean(b *testing.B) {
	for i := 0; i < b.N; i++ {
		TestClean(&testing.T{})
	}
}

func TestClean(t *testing.T) {
	assert.Equal(t, "Please could you stop the noise?\nI'm trying to get some rest", Clean(dirty[0]))
	assert.Equal(t, "she walks in beauty like the night\n\nOf cloudless climes, and starry skies", Clean(dirty[1]))
	assert.Equal(t, "Hey.\nYou.\nOut there in the cold, getting lonely, getting old\nCan you feel me?", Clean(dirty[2]))
	assert.Equal(t, "single line", Clean(dirty[3]))
	assert.Empty(t, Clean(dirty[4]))
	assert.Equal(t, "Café con leche.\nMañana", Clean(dirty[5]))
	assert.Equal(t, "la noche es larga y yo sigo aquí", Clean(dirty[6]))
	assert.Equal(t, "Jóga emotional landscapes", Clean(dirty[7]))
	assert.Equal(t, "沈むように溶けてゆくように", Clean(dirty[8]))
}

func TestCleanIdempotent(t *testing.T) {
	for _, text := range dirty {
		cleaned := Clean(text)
		assert.Equal(t, cleaned, Clean(cleaned))
	}
}
