package i18n

import "testing"

func TestGetCatalogFallback(t *testing.T) {
	if got := GetCatalog("xx-XX").Locale(); got != BaseLocale {
		t.Errorf("unknown locale resolved to %q, want %q", got, BaseLocale)
	}
	if got := GetCatalog("").Locale(); got != BaseLocale {
		t.Errorf("empty locale resolved to %q, want %q", got, BaseLocale)
	}
}

func TestFormat(t *testing.T) {
	catalog := GetCatalog(BaseLocale)

	got := catalog.Format(CodeRoomQuorumNotMet, map[string]string{"Present": "2", "Required": "3"})
	want := "Quorum has not been reached (2 of 3 required members present)"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestFormatUnknownCode(t *testing.T) {
	catalog := GetCatalog(BaseLocale)
	if got := catalog.Format("NO_SUCH_CODE", nil); got != "NO_SUCH_CODE" {
		t.Errorf("Format(unknown) = %q, want the code itself", got)
	}
}

func TestFormatMissingMetadata(t *testing.T) {
	catalog := GetCatalog(BaseLocale)
	// Template variables without metadata render as empty, not as an error.
	got := catalog.Format(CodeRoomInvalidTransition, nil)
	if got != "The session cannot move from  to " {
		t.Errorf("Format() without metadata = %q", got)
	}
}

func TestRegisterCatalog(t *testing.T) {
	RegisterCatalog("fr-FR", NewCatalog("fr-FR", map[Code]string{
		CodeRoomSessionEnded: "La séance est terminée",
	}))

	catalog := GetCatalog("fr-FR")
	if catalog.Locale() != "fr-FR" {
		t.Fatalf("Locale() = %q, want fr-FR", catalog.Locale())
	}
	if got := catalog.Format(CodeRoomSessionEnded, nil); got != "La séance est terminée" {
		t.Errorf("Format() = %q", got)
	}
}

func TestEveryBaseMessageParses(t *testing.T) {
	catalog := GetCatalog(BaseLocale)
	for code := range catalog.messages {
		if got := catalog.Format(code, map[string]string{}); got == "" {
			t.Errorf("Format(%s) rendered empty", code)
		}
	}
}
