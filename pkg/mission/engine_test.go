package mission

import (
	"io"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/hayate891/naev/pkg/gfx"
)

func testEngine(catalog []*Data, maxActive int) (*Engine, *gfx.Cache) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cache := gfx.NewCache(log)
	e := NewEngine(catalog, cache, maxActive, log)
	e.SetRand(rand.New(rand.NewSource(1)))
	return e, cache
}

func barMission(name string, priority int) *Data {
	return &Data{
		Name:        name,
		NPC:         "Patron " + name,
		Portrait:    "gfx/portraits/" + name + ".webp",
		Description: "Has work: " + name,
		Avail: Avail{
			Location: AvailabilityBar,
			Priority: priority,
		},
	}
}

func TestBarOffersFiltersByClass(t *testing.T) {
	computer := barMission("computer_job", 1)
	computer.Avail.Location = AvailabilityComputer
	catalog := []*Data{
		barMission("cargo", 5),
		computer,
		barMission("escort", 1),
	}
	e, _ := testEngine(catalog, 4)

	offers, err := e.BarOffers("Em 1", "Hakoi", "Empire")
	if err != nil {
		t.Fatalf("BarOffers failed: %v", err)
	}
	if len(offers) != 2 {
		t.Fatalf("expected 2 bar offers, got %d", len(offers))
	}
	for _, m := range offers {
		if m.Data.Avail.Location != AvailabilityBar {
			t.Errorf("non-bar mission %q offered at the bar", m.Data.Name)
		}
		if m.Portrait == nil {
			t.Errorf("offer %q has no portrait handle", m.Data.Name)
		}
	}
}

func TestBarOffersFiltersBySpobAndFaction(t *testing.T) {
	restricted := barMission("local_only", 1)
	restricted.Spobs = []string{"Darkshed"}
	factional := barMission("pirates_only", 1)
	factional.Factions = []string{"Pirate"}
	catalog := []*Data{restricted, factional, barMission("anywhere", 1)}
	e, _ := testEngine(catalog, 4)

	offers, _ := e.BarOffers("Em 1", "Hakoi", "Empire")
	if len(offers) != 1 || offers[0].Data.Name != "anywhere" {
		t.Fatalf("expected only the unrestricted mission, got %d offers", len(offers))
	}

	offers, _ = e.BarOffers("Darkshed", "Alteris", "Pirate")
	if len(offers) != 3 {
		t.Fatalf("expected all 3 missions at Darkshed, got %d", len(offers))
	}
	for _, m := range offers {
		m.Portrait.Release()
	}
}

func TestBarOffersAppearanceChance(t *testing.T) {
	rare := barMission("rare", 1)
	rare.Avail.Chance = 30
	e, _ := testEngine([]*Data{rare}, 4)

	// Over many landings a 30% mission must appear sometimes and be
	// absent sometimes.
	appeared, missed := 0, 0
	for i := 0; i < 200; i++ {
		offers, _ := e.BarOffers("Em 1", "Hakoi", "Empire")
		if len(offers) > 0 {
			appeared++
			offers[0].Portrait.Release()
		} else {
			missed++
		}
	}
	if appeared == 0 || missed == 0 {
		t.Errorf("chance roll degenerate: appeared=%d missed=%d", appeared, missed)
	}
}

func TestAcceptDefaultActivates(t *testing.T) {
	e, cache := testEngine([]*Data{barMission("cargo", 1)}, 2)

	offers, _ := e.BarOffers("Em 1", "Hakoi", "Empire")
	m := offers[0]

	outcome, err := e.Accept(m)
	if err != nil {
		t.Fatalf("Accept failed: %v", err)
	}
	if outcome != OutcomeAccepted {
		t.Fatalf("expected accepted, got %s", outcome)
	}
	if len(e.Active()) != 1 {
		t.Fatalf("expected 1 active mission, got %d", len(e.Active()))
	}

	// The offer instance is still owned by the caller.
	e.Cleanup(m)
	active := e.Active()
	if len(active) != 1 {
		t.Fatal("cleaning the consumed offer must not abort the active mission")
	}

	e.Finish(active[0])
	if len(e.Active()) != 0 {
		t.Error("finished mission still active")
	}
	if cache.Live() != 0 {
		t.Errorf("leaked %d texture handles", cache.Live())
	}
}

func TestAcceptOutcomeHandlers(t *testing.T) {
	e, cache := testEngine([]*Data{barMission("errand", 1)}, 2)
	e.RegisterAccept("errand", func(m *Mission) Outcome {
		return OutcomeCompleted
	})

	offers, _ := e.BarOffers("Em 1", "Hakoi", "Empire")
	outcome, err := e.Accept(offers[0])
	if err != nil {
		t.Fatalf("Accept failed: %v", err)
	}
	if outcome != OutcomeCompleted {
		t.Fatalf("expected completed, got %s", outcome)
	}
	if len(e.Active()) != 0 {
		t.Error("completed mission must not occupy a slot")
	}
	e.Cleanup(offers[0])
	if cache.Live() != 0 {
		t.Errorf("leaked %d texture handles", cache.Live())
	}
}

func TestCapacity(t *testing.T) {
	e, _ := testEngine([]*Data{barMission("a", 1), barMission("b", 1)}, 1)

	offers, _ := e.BarOffers("Em 1", "Hakoi", "Empire")
	if len(offers) != 2 {
		t.Fatalf("expected 2 offers, got %d", len(offers))
	}
	if !e.CanAccept() {
		t.Fatal("fresh engine must have free slots")
	}
	if _, err := e.Accept(offers[0]); err != nil {
		t.Fatalf("Accept failed: %v", err)
	}
	if e.CanAccept() {
		t.Error("slots not exhausted at maxActive=1")
	}
	if _, err := e.Accept(offers[1]); err == nil {
		t.Error("Accept past capacity must fail")
	}
}

func TestActiveMissionsNotReoffered(t *testing.T) {
	e, _ := testEngine([]*Data{barMission("cargo", 1)}, 2)

	offers, _ := e.BarOffers("Em 1", "Hakoi", "Empire")
	if _, err := e.Accept(offers[0]); err != nil {
		t.Fatalf("Accept failed: %v", err)
	}
	e.Cleanup(offers[0])

	offers, _ = e.BarOffers("Em 1", "Hakoi", "Empire")
	if len(offers) != 0 {
		t.Errorf("active mission offered again: %d offers", len(offers))
	}
}

func TestRunHook(t *testing.T) {
	e, cache := testEngine([]*Data{barMission("smuggler", 1)}, 2)

	var ran []string
	e.RegisterHook("smuggler", "bar_approach", func(m *Mission) error {
		ran = append(ran, m.Data.Name)
		return nil
	})

	offers, _ := e.BarOffers("Em 1", "Hakoi", "Empire")
	m := offers[0]

	if err := e.RunHook(m, "bar_approach"); err != nil {
		t.Fatalf("RunHook failed: %v", err)
	}
	if len(ran) != 1 || ran[0] != "smuggler" {
		t.Errorf("hook did not run: %v", ran)
	}
	if err := e.RunHook(m, "missing"); err == nil {
		t.Error("unknown hook must error")
	}

	e.Cleanup(m)
	if cache.Live() != 0 {
		t.Errorf("leaked %d texture handles", cache.Live())
	}
}
