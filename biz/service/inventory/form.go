package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/yi-nology/campus_inventory/biz/dal/model"
	"github.com/yi-nology/campus_inventory/biz/model/api"
	"github.com/yi-nology/campus_inventory/pkg/constants"
	"github.com/yi-nology/campus_inventory/pkg/metrics"
	"github.com/yi-nology/campus_inventory/pkg/validator"
)

// Submit validates in, appends the assembled record and announces the
// change. Checks run in order and the first failure wins: location, then
// identifiers, then enum choices and date. Store errors are returned as is.
func (s *Service) Submit(ctx context.Context, in api.AssetInput) (*model.AssetRecord, error) {
	record, err := s.assemble(ctx, in)
	if err != nil {
		if _, ok := err.(*ValidationError); ok {
			metrics.Submissions.WithLabelValues(metrics.OutcomeValidation).Inc()
		} else {
			metrics.Submissions.WithLabelValues(metrics.OutcomeError).Inc()
		}
		return nil, err
	}

	if err := s.store.Append(ctx, model.Row(*record)); err != nil {
		metrics.Submissions.WithLabelValues(metrics.OutcomeError).Inc()
		hlog.CtxErrorf(ctx, "append asset %s failed: %v", record.AssetTag, err)
		return nil, err
	}

	s.events.Publish(ctx, NewEvent(EventStoreChanged, record.AssetTag, *record))
	metrics.Submissions.WithLabelValues(metrics.OutcomeSuccess).Inc()
	hlog.CtxInfof(ctx, "asset registered: tag=%s site=%s building=%s", record.AssetTag, record.Site, record.Building)
	return record, nil
}

func (s *Service) assemble(ctx context.Context, in api.AssetInput) (*model.AssetRecord, error) {
	site, building := strings.TrimSpace(in.Site), strings.TrimSpace(in.Building)
	if err := s.checkLocation(ctx, site, building); err != nil {
		return nil, err
	}

	tag, okTag := validator.SanitizeIdentifier(in.AssetTag)
	serial, okSerial := validator.SanitizeIdentifier(in.Serial)
	if !okTag || !okSerial {
		return nil, &ValidationError{Kind: IdentifiersRequired}
	}

	equipmentStatus, err := choose(in.EquipmentStatus, s.vocab.EquipmentStatus, "equipment_status")
	if err != nil {
		return nil, err
	}
	maintenanceStatus, err := choose(in.MaintenanceStatus, s.vocab.MaintenanceStatus, "maintenance_status")
	if err != nil {
		return nil, err
	}
	maintenanceType, err := choose(in.MaintenanceType, s.vocab.MaintenanceType, "maintenance_type")
	if err != nil {
		return nil, err
	}

	date := strings.TrimSpace(in.RegistrationDate)
	if date == "" {
		date = s.now().Format(model.RegistrationDateLayout)
	} else if _, err := time.Parse(model.RegistrationDateLayout, date); err != nil {
		return nil, &ValidationError{Kind: InvalidDate, Field: "registration_date"}
	}

	return &model.AssetRecord{
		RegistrationDate:  date,
		Site:              site,
		Building:          building,
		Location:          strings.TrimSpace(in.Location),
		Area:              strings.TrimSpace(in.Area),
		EquipmentType:     strings.TrimSpace(in.EquipmentType),
		Brand:             strings.TrimSpace(in.Brand),
		Model:             strings.TrimSpace(in.Model),
		AssetTag:          tag,
		Serial:            serial,
		Monitor1:          strings.TrimSpace(in.Monitor1),
		Monitor2:          strings.TrimSpace(in.Monitor2),
		WifiMAC:           strings.TrimSpace(in.WifiMAC),
		LanMAC:            strings.TrimSpace(in.LanMAC),
		ResponsibleParty:  strings.TrimSpace(in.ResponsibleParty),
		EquipmentStatus:   equipmentStatus,
		MaintenanceStatus: maintenanceStatus,
		MaintenanceType:   maintenanceType,
		Notes:             strings.TrimSpace(in.Notes),
	}, nil
}

// checkLocation requires a site and building chosen from the current
// reference lists. Reference failures are returned unchanged.
func (s *Service) checkLocation(ctx context.Context, site, building string) error {
	if !validator.IsSelected(site) || !validator.IsSelected(building) {
		return &ValidationError{Kind: LocationRequired}
	}
	sites, err := s.reference.ListSites(ctx)
	if err != nil {
		return err
	}
	if !constants.Contains(sites, site) {
		return &ValidationError{Kind: LocationRequired}
	}
	buildings, err := s.reference.ListBuildings(ctx, site)
	if err != nil {
		return err
	}
	if !constants.Contains(buildings, building) {
		return &ValidationError{Kind: LocationRequired}
	}
	return nil
}

// choose returns value when it belongs to set. Empty selects the first
// member, as an untouched selector would.
func choose(value string, set []string, field string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" && len(set) > 0 {
		return set[0], nil
	}
	if !constants.Contains(set, value) {
		return "", &ValidationError{Kind: InvalidChoice, Field: field}
	}
	return value, nil
}
