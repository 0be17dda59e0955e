// Package models defines the data structures shared across the corpus
// pipeline: the raw JSON document schema, the processed record, and the
// chart-ready aggregate outputs.
package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexString accepts a JSON string, number, bool, or null and stores it as a
// string. Source documents are hand-entered and the year field in particular
// appears both as "2020" and 2020.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch val := v.(type) {
	case nil:
		*f = ""
	case string:
		*f = FlexString(val)
	case float64:
		// Render integral values without a decimal point
		if val == float64(int64(val)) {
			*f = FlexString(strconv.FormatInt(int64(val), 10))
		} else {
			*f = FlexString(strconv.FormatFloat(val, 'f', -1, 64))
		}
	default:
		*f = FlexString(fmt.Sprintf("%v", val))
	}
	return nil
}

func (f FlexString) String() string {
	return string(f)
}

// StringList accepts either a JSON array or a single comma-separated string.
// Array elements that are not strings are coerced.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch val := v.(type) {
	case nil:
		*s = nil
	case string:
		*s = strings.Split(val, ",")
	case []interface{}:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if str, ok := item.(string); ok {
				out = append(out, str)
			} else {
				out = append(out, fmt.Sprintf("%v", item))
			}
		}
		*s = out
	default:
		*s = []string{fmt.Sprintf("%v", val)}
	}
	return nil
}

// RawRecord is the fixed external schema of one TCC document. Field names are
// literal, diacritics included. Unrecognized fields are ignored.
type RawRecord struct {
	Author     FlexString `json:"Autor"`
	Title      FlexString `json:"Título"`
	Year       FlexString `json:"Ano de publicação"`
	Place      FlexString `json:"Local de publicação"`
	Advisor    FlexString `json:"Orientador(a)"`
	CoAdvisor  FlexString `json:"Coorientador(a)"`
	Summary    FlexString `json:"Resumo"`
	Keywords   StringList `json:"Palavras-chave"`
	Intro      FlexString `json:"Introdução"`
	Conclusion FlexString `json:"Conclusão"`
}

// ProcessedRecord is one TCC after field extraction and theme normalization.
// Themes holds normalized grouping keys: non-empty, deduplicated within the
// record, first-occurrence order. Keywords keeps the raw strings (trimmed,
// original casing) for display.
type ProcessedRecord struct {
	ID       string   `json:"id" yaml:"id"`
	Title    string   `json:"title" yaml:"title"`
	Summary  string   `json:"summary" yaml:"summary"`
	Author   string   `json:"author" yaml:"author"`
	Year     string   `json:"year" yaml:"year"`
	Keywords []string `json:"keywords" yaml:"keywords"`
	Themes   []string `json:"themes" yaml:"themes"`
}

// DisplayItem is one entry of the flattened per-theme browse list: one item
// per (record, theme) pair.
type DisplayItem struct {
	Theme   string `json:"theme" yaml:"theme"`
	Title   string `json:"title" yaml:"title"`
	Summary string `json:"summary" yaml:"summary"`
}

// ThemeFrequency is a theme key with its occurrence count across the corpus.
type ThemeFrequency struct {
	Theme string `json:"theme" yaml:"theme"`
	Count int    `json:"count" yaml:"count"`
}

// YearCount is the per-year record count.
type YearCount struct {
	Year  string `json:"year" yaml:"year"`
	Count int    `json:"count" yaml:"count"`
}

// AuthorCount is an advisor's display initials with their total record count.
type AuthorCount struct {
	Name  string `json:"name" yaml:"name"`
	Total int    `json:"total" yaml:"total"`
}

// ProportionSlice is one slice of the top-N-with-"Outros" breakdown.
type ProportionSlice struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

// TrendRow is one year of the theme trend view. Counts has an entry for every
// tracked theme, zero-filled.
type TrendRow struct {
	Year   int            `json:"year" yaml:"year"`
	Counts map[string]int `json:"counts" yaml:"counts"`
}

// LanguageCount is the number of records whose summary was detected as a
// given language.
type LanguageCount struct {
	Language string `json:"language" yaml:"language"`
	Count    int    `json:"count" yaml:"count"`
}
