package assign

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(Te *testing.T) {
	C := DefaultConfig()
	if err := C.Validate(); err != nil {
		Te.Fatal(err)
	}
	if C.Input != "conf.qe" || C.Output != "V.txt" || C.Log != "log.txt" {
		Te.Errorf("wrong default files %+v", C)
	}
	if len(C.Classes) != 2 || C.Classes[0].Table != "Fe2_V.txt" || C.Classes[1].Table != "Fe3_V.txt" {
		Te.Errorf("wrong default classes %+v", C.Classes)
	}
}

func TestLoadConfig(Te *testing.T) {
	dir := Te.TempDir()
	name := filepath.Join(dir, "hubbardv.toml")
	text := `input_file = "fe3o4.qe"
log_file = "fe3o4.log"

[[class]]
symbol = "Mn2"
table = "Mn2_V.txt"
`
	if err := os.WriteFile(name, []byte(text), 0644); err != nil {
		Te.Fatal(err)
	}
	C, err := LoadConfig(name)
	if err != nil {
		Te.Fatal(err)
	}
	if C.Input != "fe3o4.qe" || C.Log != "fe3o4.log" {
		Te.Errorf("values from the file not read: %+v", C)
	}
	if C.Output != "V.txt" || C.Ligand != "O" {
		Te.Errorf("defaults not kept: %+v", C)
	}
	if len(C.Classes) != 1 || C.Classes[0].Symbol != "Mn2" {
		Te.Errorf("classes not replaced: %+v", C.Classes)
	}
	if err := os.WriteFile(name, []byte("input_file = \n"), 0644); err != nil {
		Te.Fatal(err)
	}
	if _, err := LoadConfig(name); err == nil {
		Te.Errorf("invalid TOML accepted")
	}
}

func TestValidate(Te *testing.T) {
	bad := []func(*Config){
		func(C *Config) { C.Input = "" },
		func(C *Config) { C.Ligand = "" },
		func(C *Config) { C.Classes = nil },
		func(C *Config) { C.Classes[1].Symbol = "Fe2" },
		func(C *Config) { C.Classes[0].Symbol = "O" },
		func(C *Config) { C.Classes[0].Table = "" },
		func(C *Config) { C.Log = C.Output },
	}
	for i, f := range bad {
		C := DefaultConfig()
		f(C)
		if err := C.Validate(); err == nil {
			Te.Errorf("invalid configuration %d accepted", i)
		}
	}
}
