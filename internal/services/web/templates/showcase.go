package templates

import (
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/mythic.nexus/internal/services/web/routepath"
	"github.com/louisbranch/mythic.nexus/internal/showcase/filter"
)

// IndexPage renders the hero, filter bar and character list.
func IndexPage(filterView FilterView, results ResultsView, loc Localizer) templ.Component {
	return component(func(h *htmlWriter) {
		h.component(Hero(loc))
		h.component(FilterBar(filterView, loc))
		h.component(Results(results, loc))
	})
}

// CharacterPage renders a single card with a way back to the roster.
func CharacterPage(card CardView, loc Localizer) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<p class="back-link"><a href="/">`)
		h.text(T(loc, "showcase.error.back"))
		h.raw(`</a></p><section class="cards">`)
		h.component(Card(card, loc))
		h.raw("</section>")
	})
}

// Hero renders the page introduction.
func Hero(loc Localizer) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<section class="hero"><p class="eyebrow">`)
		h.text(T(loc, "showcase.hero.eyebrow"))
		h.raw("</p><h1>")
		h.text(T(loc, "showcase.hero.title"))
		h.raw("</h1><p class=\"lede\">")
		h.text(T(loc, "showcase.hero.body"))
		h.raw("</p></section>")
	})
}

// FilterBar renders the search, role and difficulty controls. The form is a
// plain GET form; HTMX swaps only the result list.
func FilterBar(view FilterView, loc Localizer) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<form class="filter-bar" method="get"`)
		h.attr("action", view.Action)
		h.attr("hx-get", view.Action)
		h.attr("hx-target", Target(ResultsID))
		h.attr("hx-swap", "outerHTML")
		h.attr("hx-push-url", "true")
		h.attr("hx-trigger", "submit, input delay:250ms, change")
		h.raw(`><label class="search"><span>`)
		h.text(T(loc, "showcase.filter.search_label"))
		h.raw(`</span><input type="search"`)
		h.attr("name", routepath.QueryKeySearch)
		h.attr("value", view.Query)
		h.attr("placeholder", T(loc, "showcase.filter.search_placeholder"))
		h.raw("></label>")

		writeChoices(h, T(loc, "showcase.filter.role_label"), routepath.QueryKeyRole, "pill-neon", view.Roles, view.Role, func(value string) string {
			if value == filter.AllRoles {
				return T(loc, "showcase.filter.all_roles")
			}
			return value
		})
		writeChoices(h, T(loc, "showcase.filter.difficulty_label"), routepath.QueryKeyDifficulty, "pill-aurora", view.Difficulties, view.Difficulty, func(value string) string {
			if value == filter.AllDifficulties {
				return T(loc, "showcase.filter.all_difficulties")
			}
			return value
		})

		h.raw(`<div class="filter-actions"><button type="submit">`)
		h.text(T(loc, "showcase.filter.apply"))
		h.raw("</button><a")
		h.url("href", view.ResetURL)
		h.raw(` class="reset">`)
		h.text(T(loc, "showcase.filter.reset"))
		h.raw("</a></div></form>")
	})
}

func writeChoices(h *htmlWriter, legend, name, class string, values []string, selected string, label func(string) string) {
	h.raw(`<fieldset class="choices"><legend>`)
	h.text(legend)
	h.raw("</legend>")
	for _, value := range values {
		h.raw("<label")
		h.attr("class", "pill "+class)
		h.raw(`><input type="radio"`)
		h.attr("name", name)
		h.attr("value", value)
		h.boolAttr("checked", value == selected)
		h.raw("><span>")
		h.text(label(value))
		h.raw("</span></label>")
	}
	h.raw("</fieldset>")
}

// Results renders the matching cards, or the dedicated empty state when
// nothing matched.
func Results(view ResultsView, loc Localizer) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<section class="cards"`)
		h.attr("id", ResultsID)
		h.raw(` aria-live="polite">`)
		if len(view.Cards) == 0 {
			h.component(EmptyState(view.ResetURL, loc))
			h.raw("</section>")
			return
		}
		h.raw(`<p class="results-count">`)
		h.text(T(loc, "showcase.results.count", len(view.Cards), view.Total))
		h.raw("</p>")
		for _, card := range view.Cards {
			h.component(Card(card, loc))
		}
		h.raw("</section>")
	})
}

// EmptyState renders the no-match message.
func EmptyState(resetURL string, loc Localizer) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<div class="empty-state" data-state="empty"><h2>`)
		h.text(T(loc, "showcase.results.empty_title"))
		h.raw("</h2><p>")
		h.text(T(loc, "showcase.results.empty_body"))
		h.raw("</p><a")
		h.url("href", resetURL)
		h.raw(">")
		h.text(T(loc, "showcase.filter.reset"))
		h.raw("</a></div>")
	})
}

// Card renders one character. Strengths, guides and the gallery only render
// while the card is expanded.
func Card(view CardView, loc Localizer) templ.Component {
	return component(func(h *htmlWriter) {
		c := view.Character
		h.raw(`<article class="card"`)
		h.attr("id", CardID(c.ID))
		h.attr("data-expanded", strconv.FormatBool(view.Expanded))
		h.raw(`><header class="card-header"><img class="portrait" width="64" height="64"`)
		h.url("src", c.ImageURL)
		h.attr("alt", c.Name)
		h.raw("><div><h2>")
		h.text(c.Name)
		h.raw(`</h2><p class="tagline">`)
		h.text(c.Tagline)
		h.raw(`</p></div><ul class="tags">`)
		writeTag(h, "tag-aurora", T(loc, "showcase.card.role"), c.Role)
		writeTag(h, "tag-neon", T(loc, "showcase.card.difficulty"), c.Difficulty)
		writeTag(h, "tag-ember", T(loc, "showcase.card.faction"), c.Faction)
		h.raw(`</ul></header><p class="background">`)
		h.text(c.Background)
		h.raw(`</p><section class="abilities"><h3 class="visually-hidden">`)
		h.text(T(loc, "showcase.card.abilities"))
		h.raw("</h3>")
		for _, ability := range c.Abilities {
			h.raw(`<div class="ability"><p class="ability-type">`)
			h.text(ability.Type)
			h.raw(`</p><p class="ability-name">`)
			h.text(ability.Name)
			h.raw(`</p><p class="ability-description">`)
			h.text(ability.Description)
			h.raw("</p></div>")
		}
		h.raw("</section>")

		if view.Expanded {
			h.raw(`<div class="extended"><section class="strengths"><h3>`)
			h.text(T(loc, "showcase.card.strengths"))
			h.raw("</h3><ul>")
			for _, strength := range c.Strengths {
				h.raw("<li>")
				h.text(strength)
				h.raw("</li>")
			}
			h.raw("</ul></section>")
			h.component(Guides(view.Guides, loc))
			h.component(Gallery(view.Gallery, loc))
			h.raw("</div>")
		}

		expanded := view.Expanded
		h.link(view.Toggle, "expand-toggle", &expanded, func() {
			if view.Expanded {
				h.text(T(loc, "showcase.card.collapse"))
			} else {
				h.text(T(loc, "showcase.card.expand"))
			}
		})
		h.raw("</article>")
	})
}

func writeTag(h *htmlWriter, class, label, value string) {
	h.raw("<li")
	h.attr("class", "tag "+class)
	h.attr("title", label)
	h.raw(">")
	h.text(value)
	h.raw("</li>")
}
