package profile

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/dungeon-collector/internal/storage"
)

func TestStorePlayerDataRoundTrip(t *testing.T) {
	kv := storage.NewMemory()
	s := NewStore(kv, "", nil)

	p := NewPlayerData()
	if ok, err := s.LoadPlayerData(p); ok || err != nil {
		t.Errorf("LoadPlayerData() on empty store = %v, %v; expected false, nil", ok, err)
	}

	p.Currency = 30
	p.OwnedCosmetics.Put("ring")
	p.EquippedCosmetics.Put("ring")
	if err := s.SavePlayerData(p); err != nil {
		t.Fatalf("SavePlayerData failed: %v", err)
	}

	loaded := NewPlayerData()
	if ok, err := s.LoadPlayerData(loaded); !ok || err != nil {
		t.Fatalf("LoadPlayerData() = %v, %v; expected true, nil", ok, err)
	}
	if loaded.Currency != 30 || !loaded.Wearing("ring") {
		t.Errorf("loaded record = %+v", loaded)
	}
}

func TestStoreTolerantLoad(t *testing.T) {
	kv := storage.NewMemory()
	kv.Put(KeyPlayerData, []byte("{not json"))
	kv.Put(KeySettings, []byte(`{"CURSOR_SPEED":"fast"}`))
	s := NewStore(kv, "", nil)

	p := NewPlayerData()
	p.Currency = 5
	if ok, err := s.LoadPlayerData(p); ok || err != nil {
		t.Errorf("corrupt player data: LoadPlayerData() = %v, %v; expected false, nil", ok, err)
	}
	if p.Currency != 5 {
		t.Error("in-memory record must survive a corrupt save")
	}

	settings := DefaultSettings()
	if ok, err := s.LoadSettings(settings); ok || err != nil {
		t.Errorf("corrupt settings: LoadSettings() = %v, %v; expected false, nil", ok, err)
	}
	if !reflect.DeepEqual(settings, DefaultSettings()) {
		t.Error("in-memory settings must survive a corrupt save")
	}
}

func TestStoreLoadSettingsMergesOverDefaults(t *testing.T) {
	kv := storage.NewMemory()
	kv.Put(KeySettings, []byte(`{"CURSOR_SPEED":900,"CUSTOM":3}`))
	s := NewStore(kv, "", nil)

	settings := DefaultSettings()
	if ok, err := s.LoadSettings(settings); !ok || err != nil {
		t.Fatalf("LoadSettings() = %v, %v; expected true, nil", ok, err)
	}
	if settings[SettingCursorSpeed] != 900 || settings["CUSTOM"] != 3 {
		t.Errorf("saved values not applied: %v", settings)
	}
	if settings[SettingElevatorCountdownTime] != 30 {
		t.Error("keys absent from the save should keep their defaults")
	}
}

func TestImportSettings(t *testing.T) {
	kv := storage.NewMemory()
	s := NewStore(kv, "", nil)

	settings := Settings{"A": 1, "B": 2}
	if err := s.ImportSettings(settings, `{"B":5,"C":9}`); err != nil {
		t.Fatalf("ImportSettings failed: %v", err)
	}
	if !reflect.DeepEqual(settings, Settings{"A": 1, "B": 5, "C": 9}) {
		t.Errorf("merged settings = %v", settings)
	}

	stored := Settings{}
	if ok, _ := s.LoadSettings(stored); !ok || !reflect.DeepEqual(stored, settings) {
		t.Errorf("import should persist, stored = %v", stored)
	}

	err := s.ImportSettings(settings, "{not json")
	if !errors.Is(err, ErrImportParse) {
		t.Fatalf("malformed import error = %v, expected ErrImportParse", err)
	}
	if !reflect.DeepEqual(settings, Settings{"A": 1, "B": 5, "C": 9}) {
		t.Errorf("failed import must not modify settings, got %v", settings)
	}
}

func TestParseImport(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Settings
		wantErr bool
	}{
		{"object", `{"A": 1, "B": -2}`, Settings{"A": 1, "B": -2}, false},
		{"whole float", `{"A": 3.0, "B": 1e2}`, Settings{"A": 3, "B": 100}, false},
		{"empty object", `{}`, Settings{}, false},
		{"malformed", `{not json`, nil, true},
		{"array", `[1, 2]`, nil, true},
		{"string value", `{"A": "1"}`, nil, true},
		{"nested", `{"A": {"B": 1}}`, nil, true},
		{"fraction", `{"A": 1.5}`, nil, true},
		{"trailing", `{"A": 1} {"B": 2}`, nil, true},
		{"trailing brace", `{"A":1}}`, nil, true},
		{"trailing bracket", `{"A":1}]`, nil, true},
		{"trailing space", "{\"A\":1}\n ", Settings{"A": 1}, false},
		{"empty", ``, nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseImport(tc.input)
			if tc.wantErr {
				if !errors.Is(err, ErrImportParse) {
					t.Errorf("error = %v, expected ErrImportParse", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("ParseImport() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestStoreNamespaces(t *testing.T) {
	kv := storage.NewMemory()
	alice := NewStore(kv, "alice", nil)
	bob := NewStore(kv, "bob", nil)

	pa := NewPlayerData()
	pa.Currency = 100
	if err := alice.SavePlayerData(pa); err != nil {
		t.Fatal(err)
	}

	pb := NewPlayerData()
	if ok, _ := bob.LoadPlayerData(pb); ok {
		t.Error("bob should not see alice's save")
	}
	if _, ok, _ := kv.Get("alice/" + KeyPlayerData); !ok {
		t.Error("namespaced key should be alice/playerData")
	}
}

func TestStoreReset(t *testing.T) {
	kv := storage.NewMemory()
	s := NewStore(kv, "", nil)

	p := NewPlayerData()
	p.Currency = 999
	s.SavePlayerData(p)
	s.SaveSettings(Settings{"CURSOR_SPEED": 1})

	fresh, settings, err := s.Reset(DefaultSettings())
	if err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if fresh.Currency != 0 || settings[SettingCursorSpeed] != 600 {
		t.Error("Reset should return defaults")
	}

	loaded := NewPlayerData()
	s.LoadPlayerData(loaded)
	if loaded.Currency != 0 {
		t.Errorf("stored currency after reset = %d", loaded.Currency)
	}
}

func TestStoreResetUsesGivenDefaults(t *testing.T) {
	s := NewStore(storage.NewMemory(), "", nil)
	s.SaveSettings(Settings{SettingCursorSpeed: 1, "EXTRA": 4})

	defaults := Settings{SettingCursorSpeed: 750, SettingElevatorCountdownTime: 12}
	_, settings, err := s.Reset(defaults)
	if err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if !reflect.DeepEqual(settings, defaults) {
		t.Errorf("Reset() settings = %v, expected %v", settings, defaults)
	}

	settings[SettingCursorSpeed] = 1
	if defaults[SettingCursorSpeed] != 750 {
		t.Error("Reset must not hand back the caller's map")
	}

	stored := Settings{}
	s.LoadSettings(stored)
	if !reflect.DeepEqual(stored, defaults) {
		t.Errorf("stored settings after reset = %v, expected %v", stored, defaults)
	}
}

var errUnavailable = errors.New("kv unavailable")

// flakyKV fails the next failGets reads, and every write while failPuts is set.
type flakyKV struct {
	*storage.Memory
	failGets int
	failPuts bool
}

func (f *flakyKV) Get(key string) ([]byte, bool, error) {
	if f.failGets > 0 {
		f.failGets--
		return nil, false, errUnavailable
	}
	return f.Memory.Get(key)
}

func (f *flakyKV) Put(key string, value []byte) error {
	if f.failPuts {
		return errUnavailable
	}
	return f.Memory.Put(key, value)
}

func TestStoreReadFailure(t *testing.T) {
	kv := &flakyKV{Memory: storage.NewMemory()}
	s := NewStore(kv, "", nil)

	saved := NewPlayerData()
	saved.Currency = 500
	s.SavePlayerData(saved)
	s.SaveSettings(Settings{SettingCursorSpeed: 900})

	tests := []struct {
		name string
		load func(t *testing.T) (bool, error)
	}{
		{"player data", func(t *testing.T) (bool, error) {
			p := NewPlayerData()
			p.Currency = 7
			ok, err := s.LoadPlayerData(p)
			if p.Currency != 7 {
				t.Errorf("failed read replaced the in-memory record, currency = %d", p.Currency)
			}
			return ok, err
		}},
		{"settings", func(t *testing.T) (bool, error) {
			settings := Settings{SettingCursorSpeed: 1}
			ok, err := s.LoadSettings(settings)
			if settings[SettingCursorSpeed] != 1 {
				t.Errorf("failed read changed settings: %v", settings)
			}
			return ok, err
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			kv.failGets = 1
			ok, err := tc.load(t)
			if ok || !errors.Is(err, errUnavailable) {
				t.Errorf("load = %v, %v; expected false and the read error", ok, err)
			}
			// The next read goes through.
			if ok, err := tc.load(t); err != nil || !ok {
				t.Errorf("load after recovery = %v, %v; expected true, nil", ok, err)
			}
		})
	}
}

func TestImportSettingsSaveFailure(t *testing.T) {
	kv := &flakyKV{Memory: storage.NewMemory(), failPuts: true}
	s := NewStore(kv, "", nil)

	settings := Settings{"A": 1}
	err := s.ImportSettings(settings, `{"A":2,"B":3}`)
	if err == nil || errors.Is(err, ErrImportParse) {
		t.Fatalf("ImportSettings() error = %v, expected a save error", err)
	}
	if !reflect.DeepEqual(settings, Settings{"A": 1}) {
		t.Errorf("unsaved import changed settings: %v", settings)
	}
}

func TestCatalog(t *testing.T) {
	cat := NewCatalog(
		map[string]int{"red": 20, "green": 10, DefaultSkin: 0},
		map[string]int{"ring": 50, "tophat": 30},
	)

	var ids []string
	for _, it := range cat.Items() {
		ids = append(ids, it.ID)
	}
	if !reflect.DeepEqual(ids, []string{"green", "red", "tophat", "ring"}) {
		t.Errorf("catalog order = %v", ids)
	}

	p := NewPlayerData()
	p.OwnedSkins.Put("green")
	p.OwnedCosmetics.Put("ring")

	var listing []string
	for _, it := range cat.Listing(p) {
		listing = append(listing, it.ID)
	}
	if !reflect.DeepEqual(listing, []string{"red", "tophat"}) {
		t.Errorf("shop listing = %v, owned items must be hidden", listing)
	}

	var inv []string
	for _, it := range cat.Inventory(p) {
		inv = append(inv, it.ID)
	}
	if !reflect.DeepEqual(inv, []string{DefaultSkin, "green", "ring"}) {
		t.Errorf("inventory = %v", inv)
	}

	if _, ok := cat.Lookup("nope"); ok {
		t.Error("unknown item should not be found")
	}
}
