package model

import "fmt"

// Verse represents a single Quranic verse with its English translation
type Verse struct {
	Number      int    // global ayah number, 1..6236
	Arabic      string // original Arabic text
	Translation string // English translation (Sahih International)
	SurahName   string // English surah name
	AyahNumber  int    // verse number within the surah
}

// Reference returns the verse reference, e.g. "Surah Al-Fatihah (5)"
func (v Verse) Reference() string {
	if v.SurahName == "" {
		return "Surah --:--"
	}
	return fmt.Sprintf("Surah %s (%d)", v.SurahName, v.AyahNumber)
}

// Hadith represents a single hadith with its collection reference
type Hadith struct {
	Text   string // English hadith text
	Source string // collection name, e.g. "Sahih al-Bukhari"
	Number string // reference within the collection
}

// Reference returns the hadith reference, e.g. "Sahih al-Bukhari 52"
func (h Hadith) Reference() string {
	if h.Source == "" {
		return "Source: --"
	}
	if h.Number == "" {
		return h.Source
	}
	return fmt.Sprintf("%s %s", h.Source, h.Number)
}
