package employee

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	employeeerrors "leave-payroll/internal/employee/errors"
	"leave-payroll/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	EmployeeListCacheKey = "employees:list"
	employeeListCacheTTL = 1 * time.Hour
)

// seedEmployees is the demo directory created on an empty database.
var seedEmployees = []CreateEmployeeRequest{
	{Name: "Alice Johnson", BaseSalary: 5000, Role: RoleEmployee},
	{Name: "Bob Smith", BaseSalary: 7000, Role: RoleManager},
	{Name: "Charlie Brown", BaseSalary: 4500, Role: RoleEmployee},
}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id int64) (EmployeeResponse, error)
	SeedDefaults(ctx context.Context) (int, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("name", req.Name),
		zap.String("role", req.Role),
	)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("create employee validation failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	e := &Employee{
		Name:       strings.TrimSpace(req.Name),
		BaseSalary: req.BaseSalary,
		Role:       req.Role,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateListCache(ctx)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.Int64("employee_id", e.ID),
	)
	return mapToResponse(*e), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	// 1. Cek Redis
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, EmployeeListCacheKey).Result(); err == nil {
			var resp []EmployeeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// 2. Singleflight: one DB read per burst of cache misses
	v, err, _ := s.sf.Do(EmployeeListCacheKey, func() (any, error) {
		employees, err := s.repo.FindAll(ctx)
		if err != nil {
			s.logger.Error("get all employees failed", zap.Error(err))
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(employees)
		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, EmployeeListCacheKey, string(jsonData), employeeListCacheTTL).Err(); err != nil {
					s.logger.Warn("cache employee list failed", zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]EmployeeResponse), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.Int64("employee_id", id))
	if id <= 0 {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*e), nil
}

// SeedDefaults fills an empty directory with the demo employees and reports
// how many were created. A non-empty directory is left untouched.
func (s *service) SeedDefaults(ctx context.Context) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		s.logger.Debug("seed skipped, directory not empty", zap.Int64("employees", count))
		return 0, nil
	}

	created := 0
	for _, req := range seedEmployees {
		if _, err := s.Create(ctx, req); err != nil {
			return created, err
		}
		created++
	}
	s.logger.Info("seeded employee directory", zap.Int("employees", created))
	return created, nil
}

func (s *service) invalidateListCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, EmployeeListCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee list cache",
			zap.Error(err),
			zap.String("key", EmployeeListCacheKey),
		)
	}
}

func validateCreateRequest(req CreateEmployeeRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return employeeerrors.ErrNameRequired
	}
	if req.BaseSalary <= 0 {
		return employeeerrors.ErrInvalidBaseSalary
	}
	if req.Role != RoleEmployee && req.Role != RoleManager {
		return employeeerrors.ErrInvalidRole
	}
	return nil
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		BaseSalary: e.BaseSalary,
		Role:       e.Role,
	}
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	resp := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		resp[i] = mapToResponse(e)
	}
	return resp
}
