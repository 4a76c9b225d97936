package source

import (
	"context"
	"testing"

	"github.com/rushteam/matchkit/core"
	"github.com/rushteam/matchkit/store"
)

func seededStore(t *testing.T) *store.MemoryStore {
	t.Helper()
	ctx := context.Background()
	ms := store.NewMemoryStore()
	t.Cleanup(func() { ms.Close() })

	err := ms.SeedCatalog(ctx, "brand:catalog", map[string][]byte{
		"brand-chai": []byte(`{"id":"brand-chai","name":"Chai Point","industries":["Food & Beverage"]}`),
		"brand-gym":  []byte(`{"id":"brand-gym","name":"FitFirst","industries":["Fitness"]}`),
		"brand-bad":  []byte(`not json`),
	})
	if err != nil {
		t.Fatal(err)
	}

	ms.ZAdd(ctx, "brand:trending", 90, "brand-gym")
	ms.ZAdd(ctx, "brand:trending", 70, "brand-chai")
	ms.ZAdd(ctx, "brand:trending", 40, "brand-new")
	return ms
}

func TestStoreSourceHashCatalog(t *testing.T) {
	ms := seededStore(t)
	src := &StoreSource{Store: ms, Key: "brand:catalog"}

	got, err := src.Candidates(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	// 坏 JSON 跳过
	if len(got) != 2 {
		t.Fatalf("Candidates() returned %d, want 2: %v", len(got), idsOf(got))
	}
	byID := make(map[string]*core.Candidate)
	for _, c := range got {
		byID[c.ID] = c
	}
	if c := byID["brand-chai"]; c == nil || c.Name != "Chai Point" {
		t.Errorf("brand-chai = %+v, want decoded profile", c)
	}
}

func TestStoreSourceJSONArray(t *testing.T) {
	ctx := context.Background()
	ms := store.NewMemoryStore()
	defer ms.Close()
	ms.Set(ctx, "brands", []byte(`[{"id":"a"},{"id":""},{"id":"b"}]`))

	src := &StoreSource{Store: ms, Key: "brands"}
	got, err := src.Candidates(ctx, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Errorf("Candidates() = %v, want [a b]", idsOf(got))
	}
}

func TestStoreSourceMissingConfig(t *testing.T) {
	if _, err := (&StoreSource{}).Candidates(context.Background(), nil); !core.IsInvalidInput(err) {
		t.Errorf("Candidates() without store error = %v, want invalid input", err)
	}
}

func TestTrendingTopN(t *testing.T) {
	ms := seededStore(t)
	src := &Trending{
		Store:      ms,
		RankKey:    "brand:trending",
		ProfileKey: "brand:catalog",
		TopN:       2,
	}

	got, err := src.Candidates(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("Candidates() returned %d, want 2: %v", len(got), idsOf(got))
	}
	// 按热度降序
	if got[0].ID != "brand-gym" || got[1].ID != "brand-chai" {
		t.Errorf("Candidates() order = %v, want [brand-gym brand-chai]", idsOf(got))
	}
	if got[0].Name != "FitFirst" {
		t.Errorf("profile not hydrated: %+v", got[0])
	}
}

func TestTrendingMissingProfile(t *testing.T) {
	ms := seededStore(t)
	src := &Trending{
		Store:      ms,
		RankKey:    "brand:trending",
		ProfileKey: "brand:catalog",
	}

	got, err := src.Candidates(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	// brand-new 无档案，返回只有 ID 的候选
	var bare *core.Candidate
	for _, c := range got {
		if c.ID == "brand-new" {
			bare = c
		}
	}
	if bare == nil || bare.Name != "" {
		t.Errorf("candidate without profile = %+v, want bare candidate", bare)
	}
}

func TestTrendingFallbackIDs(t *testing.T) {
	src := &Trending{IDs: []string{"x", "y"}}
	got, err := src.Candidates(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].ID != "x" {
		t.Errorf("Candidates() = %v, want fallback IDs", idsOf(got))
	}
}
