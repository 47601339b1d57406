package text

import "testing"

func TestParseLegacy(t *testing.T) {
	tests := []struct {
		in        string
		wantText  string
		wantColor string
	}{
		{"plain", "plain", ""},
		{"&aGreen", "Green", "green"},
		{"§cRed", "Red", "red"},
		{"&x&f&f&8&8&0&0Orange", "Orange", "#ff8800"},
		{"&X&F&F&8&8&0&0Upper", "Upper", "#ff8800"},
	}

	for _, tt := range tests {
		c := ParseLegacy(tt.in)
		if c.Text != tt.wantText || c.Color != tt.wantColor {
			t.Errorf("ParseLegacy(%q) = {%q %q}, want {%q %q}", tt.in, c.Text, c.Color, tt.wantText, tt.wantColor)
		}
	}
}

func TestParseLegacyDecorations(t *testing.T) {
	c := ParseLegacy("&lBold&r plain")
	if len(c.Extra) != 2 {
		t.Fatalf("ParseLegacy() extra = %d parts, want 2", len(c.Extra))
	}
	if c.Extra[0].Bold == nil || !*c.Extra[0].Bold {
		t.Error("first part not bold")
	}
	if c.Extra[1].Bold != nil {
		t.Error("reset did not clear bold")
	}
	if got := c.String(); got != "Bold plain" {
		t.Errorf("String() = %q, want %q", got, "Bold plain")
	}
}

func TestParseLegacyColorResetsDecorations(t *testing.T) {
	c := ParseLegacy("&lA&bB")
	if len(c.Extra) != 2 {
		t.Fatalf("ParseLegacy() extra = %d parts, want 2", len(c.Extra))
	}
	if c.Extra[1].Bold != nil {
		t.Error("colour code kept bold")
	}
}

func TestLegacy(t *testing.T) {
	tests := []struct {
		c    Component
		want string
	}{
		{Text("plain"), "plain"},
		{Colored("Hi", "green"), "§aHi"},
		{Colored("Hex", "#FF0000"), "§x§f§f§0§0§0§0Hex"},
		{Component{Text: "B", Bold: boolp(true)}, "§lB"},
		{Colored("a", "red").Append(Text("b")), "§ca§cb"},
	}

	for _, tt := range tests {
		if got := tt.c.Legacy(); got != tt.want {
			t.Errorf("Legacy() = %q, want %q", got, tt.want)
		}
	}
}

func TestFallbackItalic(t *testing.T) {
	got := Text("Name").WithFallbackItalic(false).JSON()
	want := `{"text":"Name","italic":false}`
	if got != want {
		t.Errorf("JSON() = %s, want %s", got, want)
	}

	explicit := Component{Text: "x", Italic: boolp(true)}.WithFallbackItalic(false)
	if !*explicit.Italic {
		t.Error("WithFallbackItalic overrode an explicit style")
	}
}

func TestDecode(t *testing.T) {
	c := Decode(Colored("Shop", "gold").JSON())
	if c.Text != "Shop" || c.Color != "gold" {
		t.Errorf("Decode(json) = %+v", c)
	}

	c = Decode("&6Shop")
	if c.Text != "Shop" || c.Color != "gold" {
		t.Errorf("Decode(legacy) = %+v", c)
	}
}

func TestPlainLegacy(t *testing.T) {
	if got := Plain("&6Gold &lbar"); got != "Gold bar" {
		t.Errorf("Plain() = %q, want %q", got, "Gold bar")
	}
}
