package i18n

import "testing"

func TestLoad_English(t *testing.T) {
	lang, err := Load("en")
	if err != nil {
		t.Fatalf("Load(en) error = %v", err)
	}
	if lang != "en" {
		t.Errorf("Load(en) = %q", lang)
	}
	if got := T("GAME_WON"); got != "You cleared the board!" {
		t.Errorf("T(GAME_WON) = %q", got)
	}
	if got := T("NEW_GAME", "Easy"); got != "New game: Easy" {
		t.Errorf("T(NEW_GAME, Easy) = %q", got)
	}
}

func TestLoad_FallsBackToEnglish(t *testing.T) {
	lang, err := Load("xx")
	if err != nil {
		t.Fatalf("Load(xx) error = %v", err)
	}
	if lang != DefaultLanguage {
		t.Errorf("Load(xx) = %q, want %q", lang, DefaultLanguage)
	}
	if got := T("MENU_QUIT"); got != "Quit" {
		t.Errorf("T(MENU_QUIT) = %q, want Quit", got)
	}
}

func TestLoad_German(t *testing.T) {
	t.Cleanup(func() { _, _ = Load(DefaultLanguage) })
	if _, err := Load("DE"); err != nil {
		t.Fatalf("Load(DE) error = %v", err)
	}
	if got := T("MENU_QUIT"); got != "Beenden" {
		t.Errorf("T(MENU_QUIT) = %q, want Beenden", got)
	}
}

func TestT_UnknownKey(t *testing.T) {
	_, _ = Load(DefaultLanguage)
	if got := T("NOT_A_KEY"); got != "NOT_A_KEY" {
		t.Errorf("T(NOT_A_KEY) = %q", got)
	}
}

func TestLanguages(t *testing.T) {
	langs := Languages()
	if len(langs) != 2 || langs[0] != "de" || langs[1] != "en" {
		t.Errorf("Languages() = %v, want [de en]", langs)
	}
}
