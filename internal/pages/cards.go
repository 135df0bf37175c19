package pages

import (
	"strings"

	"github.com/brunohmachado/vitrine/internal/models"
)

// The catalog fragments expose their product cards through stable data
// attributes; this is the only coupling point between the controller and
// the presentation markup:
//
//	<article class="catalog-card" data-name="..." data-brand="..."
//	         data-specs="..." data-price="..." data-old-price="..."
//	         data-image="...">
const cardMarker = `class="catalog-card"`

// ParseCards extracts the product snapshots from a catalog fragment. Cards
// missing the name or price hooks are skipped; a fragment without cards
// yields an empty slice.
func ParseCards(fragment string) []models.ProductSnapshot {
	cards := []models.ProductSnapshot{}

	rest := fragment
	for {
		i := strings.Index(rest, cardMarker)
		if i < 0 {
			return cards
		}
		rest = rest[i+len(cardMarker):]

		end := strings.Index(rest, ">")
		if end < 0 {
			return cards
		}
		tag := rest[:end]

		card := models.ProductSnapshot{
			Name:     attrValue(tag, "data-name"),
			Brand:    attrValue(tag, "data-brand"),
			Specs:    attrValue(tag, "data-specs"),
			Price:    attrValue(tag, "data-price"),
			OldPrice: attrValue(tag, "data-old-price"),
			Image:    attrValue(tag, "data-image"),
		}
		if card.Name != "" && card.Price != "" {
			cards = append(cards, card)
		}
	}
}

func attrValue(tag, attr string) string {
	marker := attr + `="`
	i := strings.Index(tag, marker)
	if i < 0 {
		return ""
	}
	rest := tag[i+len(marker):]
	end := strings.Index(rest, `"`)
	if end < 0 {
		return ""
	}
	return rest[:end]
}
