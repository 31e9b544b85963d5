package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"studio/config"
	kafkaMocks "studio/infras/kafka/mocks"
	"studio/infras/otel/mocks"
	postgresMocks "studio/infras/postgres/mocks"
	bookingMocks "studio/internal/domains/booking/mocks"
	"studio/internal/domains/booking/model"
	"studio/internal/domains/booking/model/dto"
	"studio/internal/domains/booking/service"
	courseMocks "studio/internal/domains/course/mocks"
	courseModel "studio/internal/domains/course/model"
	membershipMocks "studio/internal/domains/membership/mocks"
	membershipModel "studio/internal/domains/membership/model"
	cacheMocks "studio/shared/cache/mocks"
	gDto "studio/shared/dto"
	"studio/shared/failure"
	"studio/shared/timezone"
)

func intPtr(v int) *int {
	return &v
}

func runTx(_ context.Context, fn func(*sqlx.Tx) error) error {
	return fn(nil)
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockAttendanceRepo := bookingMocks.NewMockAttendance(ctrl)
	mockCourseRepo := courseMocks.NewMockCourse(ctrl)
	mockCardRepo := membershipMocks.NewMockStudentCard(ctrl)
	mockTransactor := postgresMocks.NewMockTransactor(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.App.Booking.CancelWindowMinutes = 30

	svc := service.New(mockRepo, mockAttendanceRepo, mockCourseRepo, mockCardRepo, mockTransactor, cfg, mockCache, mockOtel, mockKafka)

	openCourse := courseModel.Course{
		ID:           "course-1",
		Capacity:     10,
		Status:       courseModel.CourseStatusScheduled,
		AllowBooking: true,
		StartsAt:     timezone.Now().Add(48 * time.Hour),
	}

	validCard := func(remaining *int) membershipModel.StudentCard {
		return membershipModel.StudentCard{
			ID:            "card-1",
			StudentID:     "student-1",
			MemberTypeID:  "member-type-1",
			ValidUntil:    timezone.Now().Add(30 * 24 * time.Hour),
			RemainingUses: remaining,
			Active:        true,
		}
	}

	req := dto.CreateBookingRequest{
		StudentID: "student-1",
		CourseID:  "course-1",
		CardID:    "card-1",
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful booking debits the card",
			req:  req,
			setupMock: func() {
				mockTransactor.EXPECT().
					WithinTx(gomock.Any(), gomock.Any()).
					DoAndReturn(runTx)

				mockCourseRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(openCourse, nil)

				mockCardRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(validCard(intPtr(5)), nil)

				mockRepo.EXPECT().
					ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					CountTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(3, nil)

				mockRepo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockCardRepo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockKafka.EXPECT().
					SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "unlimited card skips the debit",
			req:  req,
			setupMock: func() {
				mockTransactor.EXPECT().
					WithinTx(gomock.Any(), gomock.Any()).
					DoAndReturn(runTx)

				mockCourseRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(openCourse, nil)

				mockCardRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(validCard(nil), nil)

				mockRepo.EXPECT().
					ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					CountTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(0, nil)

				mockRepo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockKafka.EXPECT().
					SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "course not found",
			req:  req,
			setupMock: func() {
				mockTransactor.EXPECT().
					WithinTx(gomock.Any(), gomock.Any()).
					DoAndReturn(runTx)

				mockCourseRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(courseModel.Course{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "course closed for booking",
			req:  req,
			setupMock: func() {
				closed := openCourse
				closed.AllowBooking = false

				mockTransactor.EXPECT().
					WithinTx(gomock.Any(), gomock.Any()).
					DoAndReturn(runTx)

				mockCourseRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(closed, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "card not found",
			req:  req,
			setupMock: func() {
				mockTransactor.EXPECT().
					WithinTx(gomock.Any(), gomock.Any()).
					DoAndReturn(runTx)

				mockCourseRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(openCourse, nil)

				mockCardRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(membershipModel.StudentCard{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "inactive card treated as missing",
			req:  req,
			setupMock: func() {
				card := validCard(intPtr(5))
				card.Active = false

				mockTransactor.EXPECT().
					WithinTx(gomock.Any(), gomock.Any()).
					DoAndReturn(runTx)

				mockCourseRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(openCourse, nil)

				mockCardRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(card, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "card belongs to another student",
			req:  req,
			setupMock: func() {
				card := validCard(intPtr(5))
				card.StudentID = "student-2"

				mockTransactor.EXPECT().
					WithinTx(gomock.Any(), gomock.Any()).
					DoAndReturn(runTx)

				mockCourseRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(openCourse, nil)

				mockCardRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(card, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "expired card",
			req:  req,
			setupMock: func() {
				card := validCard(intPtr(5))
				card.ValidUntil = timezone.Now().Add(-time.Hour)

				mockTransactor.EXPECT().
					WithinTx(gomock.Any(), gomock.Any()).
					DoAndReturn(runTx)

				mockCourseRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(openCourse, nil)

				mockCardRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(card, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "card without remaining uses",
			req:  req,
			setupMock: func() {
				mockTransactor.EXPECT().
					WithinTx(gomock.Any(), gomock.Any()).
					DoAndReturn(runTx)

				mockCourseRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(openCourse, nil)

				mockCardRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(validCard(intPtr(0)), nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "duplicate booking",
			req:  req,
			setupMock: func() {
				mockTransactor.EXPECT().
					WithinTx(gomock.Any(), gomock.Any()).
					DoAndReturn(runTx)

				mockCourseRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(openCourse, nil)

				mockCardRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(validCard(intPtr(5)), nil)

				mockRepo.EXPECT().
					ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "course full",
			req:  req,
			setupMock: func() {
				mockTransactor.EXPECT().
					WithinTx(gomock.Any(), gomock.Any()).
					DoAndReturn(runTx)

				mockCourseRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(openCourse, nil)

				mockCardRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(validCard(intPtr(5)), nil)

				mockRepo.EXPECT().
					ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					CountTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(10, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "insert error rolls the booking back",
			req:  req,
			setupMock: func() {
				mockTransactor.EXPECT().
					WithinTx(gomock.Any(), gomock.Any()).
					DoAndReturn(runTx)

				mockCourseRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(openCourse, nil)

				mockCardRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(validCard(intPtr(5)), nil)

				mockRepo.EXPECT().
					ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					CountTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(3, nil)

				mockRepo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.req.StudentID, result.StudentID)
				assert.Equal(t, string(model.BookingStatusBooked), result.Status)
			}
		})
	}
}

func TestBookingService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockAttendanceRepo := bookingMocks.NewMockAttendance(ctrl)
	mockCourseRepo := courseMocks.NewMockCourse(ctrl)
	mockCardRepo := membershipMocks.NewMockStudentCard(ctrl)
	mockTransactor := postgresMocks.NewMockTransactor(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.App.Booking.CancelWindowMinutes = 30

	svc := service.New(mockRepo, mockAttendanceRepo, mockCourseRepo, mockCardRepo, mockTransactor, cfg, mockCache, mockOtel, mockKafka)

	booked := model.Booking{
		ID:        "booking-1",
		StudentID: "student-1",
		CourseID:  "course-1",
		CardID:    "card-1",
		BookedAt:  timezone.Now(),
		Status:    model.BookingStatusBooked,
	}

	req := dto.CancelBookingRequest{Reason: "schedule conflict"}

	tests := []struct {
		name      string
		bookingID string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name:      "successful cancellation credits the card",
			bookingID: "booking-1",
			setupMock: func() {
				mockTransactor.EXPECT().
					WithinTx(gomock.Any(), gomock.Any()).
					DoAndReturn(runTx)

				mockRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(booked, nil)

				mockCourseRepo.EXPECT().
					GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(courseModel.Course{ID: "course-1", StartsAt: timezone.Now().Add(48 * time.Hour)}, nil)

				mockRepo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockCardRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(membershipModel.StudentCard{ID: "card-1", StudentID: "student-1", RemainingUses: intPtr(4), Active: true}, nil)

				mockCardRepo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockKafka.EXPECT().
					SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name:      "unlimited card skips the credit",
			bookingID: "booking-1",
			setupMock: func() {
				mockTransactor.EXPECT().
					WithinTx(gomock.Any(), gomock.Any()).
					DoAndReturn(runTx)

				mockRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(booked, nil)

				mockCourseRepo.EXPECT().
					GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(courseModel.Course{ID: "course-1", StartsAt: timezone.Now().Add(48 * time.Hour)}, nil)

				mockRepo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockCardRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(membershipModel.StudentCard{ID: "card-1", StudentID: "student-1", Active: true}, nil)

				mockKafka.EXPECT().
					SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name:      "booking not found",
			bookingID: "nonexistent-id",
			setupMock: func() {
				mockTransactor.EXPECT().
					WithinTx(gomock.Any(), gomock.Any()).
					DoAndReturn(runTx)

				mockRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name:      "already cancelled booking",
			bookingID: "booking-1",
			setupMock: func() {
				cancelled := booked
				cancelled.Status = model.BookingStatusCancelled

				mockTransactor.EXPECT().
					WithinTx(gomock.Any(), gomock.Any()).
					DoAndReturn(runTx)

				mockRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(cancelled, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name:      "cancellation window passed",
			bookingID: "booking-1",
			setupMock: func() {
				mockTransactor.EXPECT().
					WithinTx(gomock.Any(), gomock.Any()).
					DoAndReturn(runTx)

				mockRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(booked, nil)

				mockCourseRepo.EXPECT().
					GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(courseModel.Course{ID: "course-1", StartsAt: timezone.Now().Add(10 * time.Minute)}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.Cancel(ctx, tt.bookingID, req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, string(model.BookingStatusCancelled), result.Status)
			}
		})
	}
}

func TestBookingService_RecordAttendance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockAttendanceRepo := bookingMocks.NewMockAttendance(ctrl)
	mockCourseRepo := courseMocks.NewMockCourse(ctrl)
	mockCardRepo := membershipMocks.NewMockStudentCard(ctrl)
	mockTransactor := postgresMocks.NewMockTransactor(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockAttendanceRepo, mockCourseRepo, mockCardRepo, mockTransactor, cfg, mockCache, mockOtel, mockKafka)

	booked := model.Booking{
		ID:        "booking-1",
		StudentID: "student-1",
		CourseID:  "course-1",
		CardID:    "card-1",
		Status:    model.BookingStatusBooked,
	}

	tests := []struct {
		name      string
		req       dto.CreateAttendanceRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful attendance marks the booking attended",
			req: dto.CreateAttendanceRequest{
				BookingID: "booking-1",
				Status:    string(model.AttendanceStatusPresent),
			},
			setupMock: func() {
				mockTransactor.EXPECT().
					WithinTx(gomock.Any(), gomock.Any()).
					DoAndReturn(runTx)

				mockRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(booked, nil)

				mockAttendanceRepo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockRepo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockKafka.EXPECT().
					SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "booking not found",
			req: dto.CreateAttendanceRequest{
				BookingID: "nonexistent-id",
			},
			setupMock: func() {
				mockTransactor.EXPECT().
					WithinTx(gomock.Any(), gomock.Any()).
					DoAndReturn(runTx)

				mockRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "cancelled booking cannot be attended",
			req: dto.CreateAttendanceRequest{
				BookingID: "booking-1",
			},
			setupMock: func() {
				cancelled := booked
				cancelled.Status = model.BookingStatusCancelled

				mockTransactor.EXPECT().
					WithinTx(gomock.Any(), gomock.Any()).
					DoAndReturn(runTx)

				mockRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(cancelled, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "insert error",
			req: dto.CreateAttendanceRequest{
				BookingID: "booking-1",
			},
			setupMock: func() {
				mockTransactor.EXPECT().
					WithinTx(gomock.Any(), gomock.Any()).
					DoAndReturn(runTx)

				mockRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(booked, nil)

				mockAttendanceRepo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.RecordAttendance(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.req.BookingID, result.BookingID)
			}
		})
	}
}

func TestBookingService_ApplyCourseCancellationTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockAttendanceRepo := bookingMocks.NewMockAttendance(ctrl)
	mockCourseRepo := courseMocks.NewMockCourse(ctrl)
	mockCardRepo := membershipMocks.NewMockStudentCard(ctrl)
	mockTransactor := postgresMocks.NewMockTransactor(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockAttendanceRepo, mockCourseRepo, mockCardRepo, mockTransactor, cfg, mockCache, mockOtel, mockKafka)

	course := courseModel.Course{
		ID:       "course-1",
		Status:   courseModel.CourseStatusScheduled,
		Capacity: 10,
	}

	tests := []struct {
		name      string
		courseID  string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name:     "cascade cancels every booked booking and credits cards",
			courseID: "course-1",
			setupMock: func() {
				mockCourseRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(course, nil)

				mockCourseRepo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				bookings := []model.Booking{
					{ID: "booking-1", CourseID: "course-1", CardID: "card-1", Status: model.BookingStatusBooked},
					{ID: "booking-2", CourseID: "course-1", CardID: "card-2", Status: model.BookingStatusBooked},
				}

				mockRepo.EXPECT().
					GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(bookings, nil)

				mockRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(bookings[0], nil)

				mockRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(bookings[1], nil)

				mockRepo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					Times(2)

				mockCardRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(membershipModel.StudentCard{ID: "card-1", RemainingUses: intPtr(2), Active: true}, nil)

				mockCardRepo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockCardRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(membershipModel.StudentCard{ID: "card-2", Active: true}, nil)
			},
			wantErr: false,
		},
		{
			name:     "bookings settled after the list read are skipped",
			courseID: "course-1",
			setupMock: func() {
				mockCourseRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(course, nil)

				mockCourseRepo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				bookings := []model.Booking{
					{ID: "booking-1", CourseID: "course-1", CardID: "card-1", Status: model.BookingStatusBooked},
					{ID: "booking-2", CourseID: "course-1", CardID: "card-2", Status: model.BookingStatusBooked},
					{ID: "booking-3", CourseID: "course-1", CardID: "card-3", Status: model.BookingStatusBooked},
				}

				mockRepo.EXPECT().
					GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(bookings, nil)

				cancelled := bookings[0]
				cancelled.Status = model.BookingStatusCancelled

				attended := bookings[1]
				attended.Status = model.BookingStatusAttended

				mockRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(cancelled, nil)

				mockRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(attended, nil)

				mockRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(bookings[2], nil)

				mockRepo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					Times(1)

				mockCardRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(membershipModel.StudentCard{ID: "card-3", RemainingUses: intPtr(1), Active: true}, nil).
					Times(1)

				mockCardRepo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					Times(1)
			},
			wantErr: false,
		},
		{
			name:     "course not found",
			courseID: "nonexistent-id",
			setupMock: func() {
				mockCourseRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(courseModel.Course{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name:     "booking update error stops the cascade",
			courseID: "course-1",
			setupMock: func() {
				mockCourseRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(course, nil)

				mockCourseRepo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				booked := model.Booking{ID: "booking-1", CardID: "card-1", Status: model.BookingStatusBooked}

				mockRepo.EXPECT().
					GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{booked}, nil)

				mockRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(booked, nil)

				mockRepo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			err := svc.ApplyCourseCancellationTx(ctx, nil, tt.courseID)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockAttendanceRepo := bookingMocks.NewMockAttendance(ctrl)
	mockCourseRepo := courseMocks.NewMockCourse(ctrl)
	mockCardRepo := membershipMocks.NewMockStudentCard(ctrl)
	mockTransactor := postgresMocks.NewMockTransactor(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockAttendanceRepo, mockCourseRepo, mockCardRepo, mockTransactor, cfg, mockCache, mockOtel, mockKafka)

	tests := []struct {
		name       string
		params     gDto.QueryParams
		setupMock  func()
		wantErr    bool
		wantResult dto.GetBookingsResponse
	}{
		{
			name:   "cache hit",
			params: gDto.QueryParams{Limit: 10, Page: 1},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:   "cache miss falls back to database",
			params: gDto.QueryParams{Limit: 10, Page: 1},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{{ID: "booking-1", Status: model.BookingStatusBooked}}, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantResult: dto.GetBookingsResponse{
				TotalData: 1,
				TotalPage: 1,
			},
		},
		{
			name:   "count error",
			params: gDto.QueryParams{Limit: 10, Page: 1},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
		{
			name:   "get all error",
			params: gDto.QueryParams{Limit: 10, Page: 1},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("get all error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.GetAll(ctx, tt.params, gDto.FilterGroup{})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantResult.TotalData, result.TotalData)
				assert.Equal(t, tt.wantResult.TotalPage, result.TotalPage)
			}
		})
	}
}

func TestBookingService_GetAllAttendances(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockAttendanceRepo := bookingMocks.NewMockAttendance(ctrl)
	mockCourseRepo := courseMocks.NewMockCourse(ctrl)
	mockCardRepo := membershipMocks.NewMockStudentCard(ctrl)
	mockTransactor := postgresMocks.NewMockTransactor(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockAttendanceRepo, mockCourseRepo, mockCardRepo, mockTransactor, cfg, mockCache, mockOtel, mockKafka)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantTotal int
	}{
		{
			name: "cache miss falls back to database",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockAttendanceRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				mockAttendanceRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Attendance{{ID: "attendance-1", BookingID: "booking-1", Status: model.AttendanceStatusPresent}}, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:   false,
			wantTotal: 1,
		},
		{
			name: "count error",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockAttendanceRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.GetAllAttendances(ctx, gDto.QueryParams{Limit: 10, Page: 1}, gDto.FilterGroup{})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTotal, result.TotalData)
			}
		})
	}
}
