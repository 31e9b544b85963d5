package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"studio/config"
	"studio/infras/otel/mocks"
	membershipMocks "studio/internal/domains/membership/mocks"
	"studio/internal/domains/membership/model"
	"studio/internal/domains/membership/model/dto"
	"studio/internal/domains/membership/service"
	cacheMocks "studio/shared/cache/mocks"
	gDto "studio/shared/dto"
	"studio/shared/failure"
	"studio/shared/timezone"
)

func intPtr(v int) *int {
	return &v
}

func TestMembershipService_CreateMemberType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMemberTypeRepo := membershipMocks.NewMockMemberType(ctrl)
	mockStudentRepo := membershipMocks.NewMockStudent(ctrl)
	mockCardRepo := membershipMocks.NewMockStudentCard(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockMemberTypeRepo, mockStudentRepo, mockCardRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		req       dto.CreateMemberTypeRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation of a counted type",
			req: dto.CreateMemberTypeRequest{
				Name:        "Ten Class Pack",
				Audience:    "adult",
				PricingType: "per_use",
				TotalUses:   intPtr(10),
				ValidDays:   90,
				Price:       200,
			},
			setupMock: func() {
				mockMemberTypeRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "successful creation of an unlimited type",
			req: dto.CreateMemberTypeRequest{
				Name:        "Monthly Unlimited",
				Audience:    "adult",
				PricingType: "period",
				ValidDays:   30,
				Price:       150,
			},
			setupMock: func() {
				mockMemberTypeRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "repository error",
			req: dto.CreateMemberTypeRequest{
				Name:        "Ten Class Pack",
				Audience:    "adult",
				PricingType: "per_use",
				ValidDays:   90,
				Price:       200,
			},
			setupMock: func() {
				mockMemberTypeRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.CreateMemberType(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.req.Name, result.Name)
				assert.Equal(t, tt.req.TotalUses, result.TotalUses)
			}
		})
	}
}

func TestMembershipService_CreateStudent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMemberTypeRepo := membershipMocks.NewMockMemberType(ctrl)
	mockStudentRepo := membershipMocks.NewMockStudent(ctrl)
	mockCardRepo := membershipMocks.NewMockStudentCard(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockMemberTypeRepo, mockStudentRepo, mockCardRepo, cfg, mockCache, mockOtel)

	guardian := "Pat Lee"

	tests := []struct {
		name      string
		req       dto.CreateStudentRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation with guardian",
			req: dto.CreateStudentRequest{
				Name:         "Sam Lee",
				Phone:        "555-0102",
				Gender:       "female",
				Age:          9,
				StudentType:  "child",
				GuardianName: &guardian,
			},
			setupMock: func() {
				mockStudentRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "repository error",
			req: dto.CreateStudentRequest{
				Name:        "Sam Lee",
				Phone:       "555-0102",
				Gender:      "female",
				Age:         25,
				StudentType: "adult",
			},
			setupMock: func() {
				mockStudentRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.CreateStudent(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.req.Name, result.Name)
				assert.Equal(t, tt.req.GuardianName, result.GuardianName)
			}
		})
	}
}

func TestMembershipService_CreateStudentCard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMemberTypeRepo := membershipMocks.NewMockMemberType(ctrl)
	mockStudentRepo := membershipMocks.NewMockStudent(ctrl)
	mockCardRepo := membershipMocks.NewMockStudentCard(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockMemberTypeRepo, mockStudentRepo, mockCardRepo, cfg, mockCache, mockOtel)

	req := dto.CreateStudentCardRequest{
		StudentID:     "student-1",
		MemberTypeID:  "member-type-1",
		ValidUntil:    timezone.Now().Add(90 * 24 * time.Hour),
		RemainingUses: intPtr(10),
	}

	tests := []struct {
		name      string
		req       dto.CreateStudentCardRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation activates the card",
			req:  req,
			setupMock: func() {
				mockStudentRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockMemberTypeRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockCardRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "student not found",
			req:  req,
			setupMock: func() {
				mockStudentRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "member type not found",
			req:  req,
			setupMock: func() {
				mockStudentRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockMemberTypeRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "insert error",
			req:  req,
			setupMock: func() {
				mockStudentRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockMemberTypeRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockCardRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.CreateStudentCard(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.True(t, result.Active)
				assert.Equal(t, tt.req.RemainingUses, result.RemainingUses)
			}
		})
	}
}

func TestMembershipService_GetAllStudentCards(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMemberTypeRepo := membershipMocks.NewMockMemberType(ctrl)
	mockStudentRepo := membershipMocks.NewMockStudent(ctrl)
	mockCardRepo := membershipMocks.NewMockStudentCard(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockMemberTypeRepo, mockStudentRepo, mockCardRepo, cfg, mockCache, mockOtel)

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

				mockCardRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				mockCardRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.StudentCard{{ID: "card-1", StudentID: "student-1", Active: true}}, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:   false,
			wantTotal: 1,
		},
		{
			name: "get all error",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockCardRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				mockCardRepo.EXPECT().
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
			result, err := svc.GetAllStudentCards(ctx, gDto.QueryParams{Limit: 10, Page: 1}, gDto.FilterGroup{})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTotal, result.TotalData)
			}
		})
	}
}
