package conllu

import (
	"testing"
)

func TestSerializeMetadataOrder(t *testing.T) {
	meta := NewMetadata()
	meta.SetFlag("newpar")
	meta.Set("sent_id", "1")
	s := Sentence{
		Tokens:   []Token{{"id": "1", "form": "The"}},
		Metadata: meta,
	}

	want := "# newpar\n# sent_id = 1\n1\tThe\t_\t_\t_\t_\t_\t_\t_\t_\n"
	if got := s.Serialize(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestSerializeEmptyValueRendersAsFlag(t *testing.T) {
	meta := NewMetadata()
	meta.Set("key", "")
	s := Sentence{Metadata: meta}

	if got := s.Serialize(); got != "# key\n" {
		t.Errorf("expected flag rendering, got %q", got)
	}
}

func TestRoundTrip(t *testing.T) {
	buf := "# newpar\n" +
		"# sent_id = 7\n" +
		"# text = The dog barks\n" +
		"1\tThe\tthe\tDET\t_\t_\t2\tdet\t_\t_\n" +
		"2\tdog\tdog\tNOUN\t_\tNumber=Sing\t3\tnsubj\t_\t_\n" +
		"3\tbarks\tbark\tVERB\t_\t_\t0\troot\t_\t_\n"

	first := ParseString(buf)
	second := ParseString(first.Serialize())

	if got, want := second.Serialize(), first.Serialize(); got != want {
		t.Fatalf("round trip not stable:\nfirst:  %q\nsecond: %q", want, got)
	}
	if second.Len() != first.Len() {
		t.Fatalf("token count changed: %d != %d", second.Len(), first.Len())
	}
	for i := range first.Tokens {
		for _, name := range FieldNames {
			if first.Token(i).Field(name) != second.Token(i).Field(name) {
				t.Errorf("token %d field %s changed: %q != %q",
					i, name, first.Token(i).Field(name), second.Token(i).Field(name))
			}
		}
	}

	fk, sk := first.Metadata.Keys(), second.Metadata.Keys()
	if len(fk) != len(sk) {
		t.Fatalf("metadata length changed: %v != %v", fk, sk)
	}
	for i := range fk {
		if fk[i] != sk[i] {
			t.Errorf("metadata order changed at %d: %q != %q", i, fk[i], sk[i])
		}
	}
}

func TestRoundTripSparseToken(t *testing.T) {
	s := ParseString("1\tThe")
	again := ParseString(s.Serialize())

	// the unset fields come back as the "_" placeholder
	if got := again.Token(0).Field("lemma"); got != Placeholder {
		t.Errorf("expected placeholder lemma, got %q", got)
	}
	if got := again.Serialize(); got != s.Serialize() {
		t.Errorf("serialization not stable: %q != %q", got, s.Serialize())
	}
}

func TestText(t *testing.T) {
	s := ParseString("1\tThe\n2\tdog")
	if got := s.Text(); got != "The dog" {
		t.Errorf("expected 'The dog', got %q", got)
	}
}
