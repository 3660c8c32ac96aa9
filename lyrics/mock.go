package lyrics

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/streambinder/lyrika/entity"
)

const (
	mockURL      = "https://example.com/mock-lyrics"
	mockBohemian = `Is this the real life? Is this just fantasy?
Caught in a landslide, no escape from reality
Open your eyes, look up to the skies and see
I'm just a poor boy, I need no sympathy
Because I'm easy come, easy go, little high, little low
Any way the wind blows doesn't really matter to me, to me

Mama, just killed a man
Put a gun against his head, pulled my trigger, now he's dead
Mama, life had just begun
But now I've gone and thrown it all away
Mama, ooh, didn't mean to make you cry
If I'm not back again this time tomorrow
Carry on, carry on as if nothing really matters`
)

type mock struct {
	log *logrus.Entry
}

func (source *mock) Lookup(_ context.Context, title, artist string) (*entity.Lyrics, error) {
	source.log.Warnf("using mock lyrics for %q, access token is not set", title)

	lyrics := &entity.Lyrics{
		SourceURL:  mockURL,
		Source:     entity.SourceMock,
		Formatting: entity.FormattingBasic,
		Provider:   entity.ProviderGenius,
		Note:       "These are mock lyrics for development",
	}

	lowerTitle := strings.ToLower(title)
	if strings.Contains(lowerTitle, "bohemian") || strings.Contains(lowerTitle, "rhapsody") {
		lyrics.Text = mockBohemian
		return lyrics, nil
	}

	lyrics.Text = "This is a mock lyric for " + title
	if artist != "" {
		lyrics.Text += " by " + artist + ".\n\nThis is generated for testing purposes.\n" +
			"The actual lyrics would be fetched from Genius in production."
	}
	return lyrics, nil
}
