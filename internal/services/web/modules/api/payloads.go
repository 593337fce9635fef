package api

import (
	"github.com/louisbranch/mythic.nexus/internal/showcase/catalog"
	"github.com/louisbranch/mythic.nexus/internal/showcase/filter"
)

type criteriaPayload struct {
	Query      string `json:"q"`
	Role       string `json:"role"`
	Difficulty string `json:"difficulty"`
}

func newCriteriaPayload(criteria filter.Criteria) criteriaPayload {
	return criteriaPayload{Query: criteria.Query, Role: criteria.Role, Difficulty: criteria.Difficulty}
}

// characterPayload replaces the catalog seed gallery with the live one.
type characterPayload struct {
	catalog.Character
	FanArt []catalog.FanArt `json:"fan_art"`
}

type characterListPayload struct {
	Criteria   criteriaPayload    `json:"criteria"`
	Total      int                `json:"total"`
	Count      int                `json:"count"`
	Characters []characterPayload `json:"characters"`
}

type fanArtListPayload struct {
	CharacterID string           `json:"character_id"`
	FanArt      []catalog.FanArt `json:"fan_art"`
}

type fanArtSubmitPayload struct {
	Artist   string `json:"artist"`
	ImageURL string `json:"image_url"`
	Caption  string `json:"caption"`
}

type filterOptionsPayload struct {
	Roles        []string `json:"roles"`
	Difficulties []string `json:"difficulties"`
}

type errorPayload struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
