// Package model resolves symbolic model identifiers to verified local artifacts.
package model

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownModel marks a symbolic model name absent from the catalog.
var ErrUnknownModel = errors.New("unknown model")

// CatalogEntry is one downloadable whisper.cpp model preset with a pinned digest.
type CatalogEntry struct {
	Name      string
	File      string
	URL       string
	SHA256    string
	SizeLabel string
}

const ggmlBase = "https://huggingface.co/ggerganov/whisper.cpp/resolve/main/"

// catalog pins every supported ggml preset to its upstream content digest.
// The engine never trusts fetched bytes that disagree with these values.
var catalog = map[string]CatalogEntry{
	"tiny": {
		Name:      "tiny",
		File:      "ggml-tiny.bin",
		URL:       ggmlBase + "ggml-tiny.bin",
		SHA256:    "be07e048e1e599ad46341c8d2a135645097a538221678b7acdd1b1919c6e1b21",
		SizeLabel: "75 MiB",
	},
	"tiny.en": {
		Name:      "tiny.en",
		File:      "ggml-tiny.en.bin",
		URL:       ggmlBase + "ggml-tiny.en.bin",
		SHA256:    "921e4cf8686fdd993dcd081a5da5b6c365bfde1162e72b08d75ac75289920b1f",
		SizeLabel: "75 MiB",
	},
	"base": {
		Name:      "base",
		File:      "ggml-base.bin",
		URL:       ggmlBase + "ggml-base.bin",
		SHA256:    "60ed5bc3dd14eea856493d334349b405782ddcaf0028d4b5df4088345fba2efe",
		SizeLabel: "142 MiB",
	},
	"base.en": {
		Name:      "base.en",
		File:      "ggml-base.en.bin",
		URL:       ggmlBase + "ggml-base.en.bin",
		SHA256:    "a03779c86df3323075f5e796cb2ce5029f00ec8869eee3fdfb897afe36c6d002",
		SizeLabel: "142 MiB",
	},
	"small": {
		Name:      "small",
		File:      "ggml-small.bin",
		URL:       ggmlBase + "ggml-small.bin",
		SHA256:    "1be3a9b2063867b937e64e2ec7483364a79917e157fa98c5d94b5c1fffea987b",
		SizeLabel: "466 MiB",
	},
	"small.en": {
		Name:      "small.en",
		File:      "ggml-small.en.bin",
		URL:       ggmlBase + "ggml-small.en.bin",
		SHA256:    "c6138d6d58ecc8322097e0f987c32f1be8bb0a18532a3f88f734d1bbf9c41e5d",
		SizeLabel: "466 MiB",
	},
	"medium": {
		Name:      "medium",
		File:      "ggml-medium.bin",
		URL:       ggmlBase + "ggml-medium.bin",
		SHA256:    "6c14d5adee5f86394037b4e4e8b59f1673b6cee10e3cf0b11bbdbee79c156208",
		SizeLabel: "1.5 GiB",
	},
	"medium.en": {
		Name:      "medium.en",
		File:      "ggml-medium.en.bin",
		URL:       ggmlBase + "ggml-medium.en.bin",
		SHA256:    "cc37e93478338ec7700281a7ac30a10128929eb8f427dda2e865faa8f6da4356",
		SizeLabel: "1.5 GiB",
	},
	"large-v3": {
		Name:      "large-v3",
		File:      "ggml-large-v3.bin",
		URL:       ggmlBase + "ggml-large-v3.bin",
		SHA256:    "64d182b440b98d5203c4f9bd541544d84c605196c4f7b845dfa11fb23594d1e2",
		SizeLabel: "2.9 GiB",
	},
	"large-v3-turbo": {
		Name:      "large-v3-turbo",
		File:      "ggml-large-v3-turbo.bin",
		URL:       ggmlBase + "ggml-large-v3-turbo.bin",
		SHA256:    "1fc70f774d38eb169993ac391eea357ef47c88757ef72ee5943879b7e8e2bc69",
		SizeLabel: "1.5 GiB",
	},
}

// Lookup returns the catalog entry for a symbolic model name.
func Lookup(name string) (CatalogEntry, error) {
	entry, ok := catalog[name]
	if !ok {
		return CatalogEntry{}, fmt.Errorf("%w: %q (known: %v)", ErrUnknownModel, name, Names())
	}
	return entry, nil
}

// Names returns every catalog model name in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
