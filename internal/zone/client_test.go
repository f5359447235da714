package zone

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const listingHTML = `<!DOCTYPE html>
<html><body>
<div class="card-grid">
  <div class="card-grid__cell">
    <a href="/cards/game/4/charizard-ex/">
      <img src="https://cdn.example.com/thumbs/charizard.webp?w=200&q=75" alt="">
    </a>
  </div>
  <div class="card-grid__cell">
    <a href="https://www.pokemon-zone.com/cards/game/25/pikachu/">
      <img src="https://cdn.example.com/thumbs/pikachu.webp" alt="">
    </a>
  </div>
  <div class="card-grid__cell">
    <span>placeholder without a link</span>
  </div>
</div>
</body></html>`

func TestFetchCardsParsesGrid(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sets/a1/" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(listingHTML))
	}))
	defer server.Close()

	client, err := New(server.URL, time.Second)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	cards, err := client.FetchCards(context.Background(), SetPath("a1"))
	if err != nil {
		t.Fatalf("fetch cards: %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(cards))
	}

	if cards[0].DetailURL != server.URL+"/cards/game/4/charizard-ex/" {
		t.Fatalf("relative href not resolved: %s", cards[0].DetailURL)
	}
	if cards[0].ImageURL != "https://cdn.example.com/thumbs/charizard.webp" {
		t.Fatalf("query string not stripped: %s", cards[0].ImageURL)
	}
	if cards[1].DetailURL != "https://www.pokemon-zone.com/cards/game/25/pikachu/" {
		t.Fatalf("absolute href rewritten: %s", cards[1].DetailURL)
	}
}

func TestFetchCardsNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client, err := New(server.URL, time.Second)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if _, err := client.FetchCards(context.Background(), "/sets/missing/"); err == nil {
		t.Fatalf("expected error for 404 listing")
	}
}

func TestFetchImageDecodes(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 8, 8))
	img.SetGray(0, 0, color.Gray{Y: 0xFF})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(buf.Bytes())
	}))
	defer server.Close()

	client, err := New(server.URL, time.Second)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	decoded, err := client.FetchImage(context.Background(), server.URL+"/thumb.png")
	if err != nil {
		t.Fatalf("fetch image: %v", err)
	}
	if decoded.Bounds().Dx() != 8 {
		t.Fatalf("unexpected bounds: %v", decoded.Bounds())
	}
}

func TestFetchImageEmptyURL(t *testing.T) {
	client, err := New("https://example.com", time.Second)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if _, err := client.FetchImage(context.Background(), "  "); err == nil {
		t.Fatalf("expected error for empty url")
	}
}

func TestNewRequiresBaseURL(t *testing.T) {
	if _, err := New("   ", time.Second); err == nil {
		t.Fatalf("expected error for empty base url")
	}
}

func TestPathHelpers(t *testing.T) {
	if got := SetPath("a2a"); got != "/sets/a2a/" {
		t.Fatalf("unexpected set path: %s", got)
	}
	if got := PackPath("a1", "mewtwo-pack"); got != "/sets/a1/packs/mewtwo-pack/" {
		t.Fatalf("unexpected pack path: %s", got)
	}
}

func TestParseCardGridSkipsCellsWithoutImage(t *testing.T) {
	html := `<div class="card-grid__cell"><a href="/cards/game/1/bulbasaur/"></a></div>`
	cards, err := parseCardGrid(strings.NewReader(html), "https://example.com")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(cards) != 0 {
		t.Fatalf("expected cell without image to be dropped, got %d", len(cards))
	}
}
