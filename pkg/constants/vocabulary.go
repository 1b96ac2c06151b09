package constants

import (
	"fmt"
	"sort"
	"strings"
)

// Selector sentinels.
const (
	// PlaceholderOption is the unselected entry of the site and building selectors.
	PlaceholderOption = "Seleccione"
)

// AllSentinels disable a filter when used as its value.
var AllSentinels = map[string]bool{
	"":      true,
	"Todas": true,
	"Todos": true,
	"All":   true,
}

// IsAllSentinel reports whether a filter value means "no filter".
func IsAllSentinel(v string) bool {
	return AllSentinels[v]
}

// Vocabulary variants.
const (
	VocabularyCondicion   = "condicion"
	VocabularyCicloVida   = "ciclo_vida"
	VocabularyConditionEN = "condition_en"

	DefaultVocabulary = VocabularyCondicion
)

// Vocabulary is the closed set of enum values a deployment accepts.
type Vocabulary struct {
	Name              string   `json:"name"`
	EquipmentStatus   []string `json:"equipment_status"`
	MaintenanceStatus []string `json:"maintenance_status"`
	MaintenanceType   []string `json:"maintenance_type"`
	PoorValue         string   `json:"poor_value"`
}

var vocabularies = map[string]Vocabulary{
	VocabularyCondicion: {
		Name:              VocabularyCondicion,
		EquipmentStatus:   []string{"Bueno", "Regular", "Malo"},
		MaintenanceStatus: []string{"Al día", "Pendiente", "Vencido"},
		MaintenanceType:   []string{"Preventivo", "Correctivo", "No aplica"},
		PoorValue:         "Malo",
	},
	VocabularyCicloVida: {
		Name:              VocabularyCicloVida,
		EquipmentStatus:   []string{"Operativo", "En reparación", "Dado de baja"},
		MaintenanceStatus: []string{"Al día", "Pendiente", "Vencido"},
		MaintenanceType:   []string{"Preventivo", "Correctivo", "No aplica"},
		PoorValue:         "Dado de baja",
	},
	VocabularyConditionEN: {
		Name:              VocabularyConditionEN,
		EquipmentStatus:   []string{"Good", "Fair", "Poor"},
		MaintenanceStatus: []string{"UpToDate", "Pending", "Overdue"},
		MaintenanceType:   []string{"Preventive", "Corrective", "NotApplicable"},
		PoorValue:         "Poor",
	},
}

// VocabularyNames returns the registered variant names, sorted.
func VocabularyNames() []string {
	names := make([]string, 0, len(vocabularies))
	for name := range vocabularies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupVocabulary returns a copy of the named vocabulary. An empty name
// selects DefaultVocabulary. poorOverride, when set, replaces the poor
// literal and must belong to the equipment status set.
func LookupVocabulary(name, poorOverride string) (Vocabulary, error) {
	if name == "" {
		name = DefaultVocabulary
	}
	v, ok := vocabularies[name]
	if !ok {
		return Vocabulary{}, fmt.Errorf("unknown vocabulary %q, want one of %s", name, strings.Join(VocabularyNames(), ", "))
	}
	v = v.clone()
	if poorOverride != "" {
		if !Contains(v.EquipmentStatus, poorOverride) {
			return Vocabulary{}, fmt.Errorf("poor value %q is not an equipment status of vocabulary %q", poorOverride, name)
		}
		v.PoorValue = poorOverride
	}
	return v, nil
}

func (v Vocabulary) clone() Vocabulary {
	v.EquipmentStatus = append([]string(nil), v.EquipmentStatus...)
	v.MaintenanceStatus = append([]string(nil), v.MaintenanceStatus...)
	v.MaintenanceType = append([]string(nil), v.MaintenanceType...)
	return v
}

// Contains reports whether value is a member of set.
func Contains(set []string, value string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}
