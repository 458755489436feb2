package attendance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/vwpl/emptrack-backend-go/internal/domain/attendance"
	"github.com/vwpl/emptrack-backend-go/internal/domain/employee"
	"github.com/vwpl/emptrack-backend-go/internal/domain/shift"
	"github.com/vwpl/emptrack-backend-go/internal/pkg/validator"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04:05"

	// Without a resolved shift, arrivals from this hour on count as late.
	fallbackLateHour = 10

	// Below this many worked hours the day is downgraded to half-day.
	halfDayThresholdHours = 4.0
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.Repository
	employeeRepo   employee.Repository
	shiftService   shift.Service
	nowFn          func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.Repository,
	employeeRepo employee.Repository,
	shiftService shift.Service,
) attendance.Service {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		shiftService:   shiftService,
		nowFn:          time.Now,
	}
}

// CheckIn implements attendance.Service.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.CheckResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckResponse{}, err
	}

	now := s.nowFn()
	today := now.Format(dateLayout)

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.CheckResponse{}, employee.ErrEmployeeNotFound
		}
		return attendance.CheckResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	employeeShift, err := s.shiftService.ResolveCurrentShift(ctx, req.EmployeeID)
	if err != nil {
		return attendance.CheckResponse{}, fmt.Errorf("failed to resolve shift: %w", err)
	}

	isLate := false
	var shiftID *string
	if employeeShift != nil {
		startMinutes, ok := validator.IsValidClock(employeeShift.StartTime)
		if !ok {
			return attendance.CheckResponse{}, fmt.Errorf("shift %s has malformed start time %q", employeeShift.ID, employeeShift.StartTime)
		}
		graceLimit := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
			Add(time.Duration(startMinutes+employeeShift.LateThreshold) * time.Minute)
		isLate = now.After(graceLimit)
		shiftID = &employeeShift.ID
	} else {
		isLate = now.Hour() >= fallbackLateHour
	}

	status := attendance.StatusPresent
	if isLate {
		status = attendance.StatusLate
	}

	checkIn := now.Format(clockLayout)
	rec := attendance.Attendance{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		Date:       today,
		CheckIn:    &checkIn,
		Status:     status,
		ShiftID:    shiftID,
	}

	// The duplicate-day check and the insert happen under one writer
	// lock; a concurrent check-in for the same employee sees the record
	// and is reported as a skip.
	stored, created, err := s.attendanceRepo.CreateIfAbsent(ctx, rec)
	if err != nil {
		return attendance.CheckResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}
	if !created {
		return attendance.CheckResponse{
			Result: attendance.ResultAlreadyCheckedIn,
			Record: mapRecordToResponse(stored),
		}, nil
	}

	return attendance.CheckResponse{
		Result: attendance.ResultApplied,
		Record: mapRecordToResponse(stored),
	}, nil
}

// CheckOut implements attendance.Service.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.CheckResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckResponse{}, err
	}

	now := s.nowFn()
	today := now.Format(dateLayout)

	// The open-record check and the close run under one writer lock;
	// of two concurrent check-outs only the first is applied.
	checkOut := now.Format(clockLayout)
	rec, applied, err := s.attendanceRepo.UpdateOpen(ctx, req.EmployeeID, today, func(rec attendance.Attendance) (attendance.Attendance, error) {
		workHours, err := computeWorkHours(today, *rec.CheckIn, checkOut)
		if err != nil {
			return attendance.Attendance{}, fmt.Errorf("failed to compute work hours: %w", err)
		}
		rec.CheckOut = &checkOut
		rec.WorkHours = &workHours
		if workHours < halfDayThresholdHours {
			rec.Status = attendance.StatusHalfDay
		}
		return rec, nil
	})
	if err != nil {
		return attendance.CheckResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}
	if !applied {
		resp := attendance.CheckResponse{Result: attendance.ResultNoOpenCheckIn}
		if rec != nil {
			resp.Record = mapRecordToResponse(*rec)
		}
		return resp, nil
	}

	return attendance.CheckResponse{
		Result: attendance.ResultApplied,
		Record: mapRecordToResponse(*rec),
	}, nil
}

// Scan implements attendance.Service.
//
// The payload is either the JSON badge payload printed on QR cards or a
// bare employee id typed into the scanner field. Both the business code
// and the internal id are accepted.
func (s *AttendanceServiceImpl) Scan(ctx context.Context, req attendance.ScanRequest) (attendance.CheckResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckResponse{}, err
	}

	code := req.Payload
	var badge struct {
		EmployeeCode string `json:"employeeId"`
		ID           string `json:"id"`
	}
	if err := json.Unmarshal([]byte(req.Payload), &badge); err == nil {
		switch {
		case badge.EmployeeCode != "":
			code = badge.EmployeeCode
		case badge.ID != "":
			code = badge.ID
		default:
			return attendance.CheckResponse{}, attendance.ErrInvalidScanPayload
		}
	}

	emp, err := s.employeeRepo.GetByCode(ctx, code)
	if err != nil {
		return attendance.CheckResponse{}, fmt.Errorf("failed to look up employee by code: %w", err)
	}
	if emp == nil {
		byID, err := s.employeeRepo.GetByID(ctx, code)
		if err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return attendance.CheckResponse{}, employee.ErrEmployeeNotFound
			}
			return attendance.CheckResponse{}, fmt.Errorf("failed to look up employee: %w", err)
		}
		emp = &byID
	}

	return s.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: emp.ID})
}

// GetToday implements attendance.Service.
func (s *AttendanceServiceImpl) GetToday(ctx context.Context) (attendance.ListAttendanceResponse, error) {
	today := s.nowFn().Format(dateLayout)
	records, err := s.attendanceRepo.ListByDate(ctx, today)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list today's attendance: %w", err)
	}
	return mapRecordsToList(records), nil
}

// List implements attendance.Service.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.HistoryFilter) (attendance.ListAttendanceResponse, error) {
	records, err := s.attendanceRepo.List(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}
	return mapRecordsToList(filterByMonth(records, filter)), nil
}

// GetEmployeeHistory implements attendance.Service.
func (s *AttendanceServiceImpl) GetEmployeeHistory(ctx context.Context, employeeID string, filter attendance.HistoryFilter) (attendance.ListAttendanceResponse, error) {
	records, err := s.attendanceRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}
	return mapRecordsToList(filterByMonth(records, filter)), nil
}

// filterByMonth keeps records falling in the filter's month. A partial
// filter (month without year or vice versa) filters nothing.
func filterByMonth(records []attendance.Attendance, filter attendance.HistoryFilter) []attendance.Attendance {
	if filter.Month == nil || filter.Year == nil {
		return records
	}
	filtered := make([]attendance.Attendance, 0, len(records))
	for _, rec := range records {
		date, err := time.Parse(dateLayout, rec.Date)
		if err != nil {
			continue
		}
		if int(date.Month()) == *filter.Month && date.Year() == *filter.Year {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

// computeWorkHours treats both clock strings as same-day timestamps.
// A check-out crossing midnight is not supported; overnight spans come
// out negative rather than wrapping.
func computeWorkHours(date, checkIn, checkOut string) (float64, error) {
	in, err := time.Parse(dateLayout+" "+clockLayout, date+" "+checkIn)
	if err != nil {
		return 0, fmt.Errorf("parse check-in time: %w", err)
	}
	out, err := time.Parse(dateLayout+" "+clockLayout, date+" "+checkOut)
	if err != nil {
		return 0, fmt.Errorf("parse check-out time: %w", err)
	}
	hours := out.Sub(in).Hours()
	return math.Round(hours*100) / 100, nil
}

func mapRecordToResponse(rec attendance.Attendance) *attendance.AttendanceResponse {
	return &attendance.AttendanceResponse{
		ID:         rec.ID,
		EmployeeID: rec.EmployeeID,
		Date:       rec.Date,
		CheckIn:    rec.CheckIn,
		CheckOut:   rec.CheckOut,
		Status:     string(rec.Status),
		WorkHours:  rec.WorkHours,
		Notes:      rec.Notes,
		ShiftID:    rec.ShiftID,
	}
}

func mapRecordsToList(records []attendance.Attendance) attendance.ListAttendanceResponse {
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, *mapRecordToResponse(rec))
	}
	return attendance.ListAttendanceResponse{
		TotalCount:  len(responses),
		Attendances: responses,
	}
}
