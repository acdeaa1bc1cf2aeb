package memory

import (
	"context"
	"sort"

	"github.com/cmlabs-hris/biztime-backend-go/internal/domain/company"
)

type companyRepository struct {
	store *Store
}

func NewCompanyRepository(store *Store) company.CompanyRepository {
	return &companyRepository{store: store}
}

func (r companyRow) toCompany() company.Company {
	return company.Company{Code: r.code, Name: r.name, Description: cloneString(r.description)}
}

func (c *companyRepository) List(ctx context.Context) ([]company.Summary, error) {
	s := c.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkError(); err != nil {
		return nil, err
	}

	out := make([]company.Summary, 0, len(s.companies))
	for _, row := range s.companies {
		out = append(out, company.Summary{Code: row.code, Name: row.name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (c *companyRepository) GetByCode(ctx context.Context, code string) (company.Company, error) {
	s := c.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkError(); err != nil {
		return company.Company{}, err
	}

	row, ok := s.companies[code]
	if !ok {
		return company.Company{}, company.ErrCompanyNotFound
	}
	return row.toCompany(), nil
}

func (c *companyRepository) Create(ctx context.Context, req company.CreateCompanyRequest) (company.Company, error) {
	s := c.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkError(); err != nil {
		return company.Company{}, err
	}

	if req.Code == nil || req.Name == nil {
		return company.Company{}, ErrNotNull
	}
	if _, exists := s.companies[*req.Code]; exists {
		return company.Company{}, &DuplicateKeyError{Table: "companies", Key: "code=" + *req.Code}
	}
	for _, row := range s.companies {
		if row.name == *req.Name {
			return company.Company{}, &DuplicateKeyError{Table: "companies", Key: "name=" + *req.Name}
		}
	}

	row := companyRow{code: *req.Code, name: *req.Name, description: cloneString(req.Description)}
	s.companies[row.code] = row
	return row.toCompany(), nil
}

func (c *companyRepository) Update(ctx context.Context, code string, req company.UpdateCompanyRequest) (company.Company, error) {
	s := c.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkError(); err != nil {
		return company.Company{}, err
	}

	row, ok := s.companies[code]
	if !ok {
		return company.Company{}, company.ErrCompanyNotFound
	}
	if req.Name == nil {
		return company.Company{}, ErrNotNull
	}
	for other, r := range s.companies {
		if other != code && r.name == *req.Name {
			return company.Company{}, &DuplicateKeyError{Table: "companies", Key: "name=" + *req.Name}
		}
	}

	row.name = *req.Name
	row.description = cloneString(req.Description)
	s.companies[code] = row
	return row.toCompany(), nil
}

func (c *companyRepository) Delete(ctx context.Context, code string) error {
	s := c.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkError(); err != nil {
		return err
	}

	if _, ok := s.companies[code]; !ok {
		return company.ErrCompanyNotFound
	}
	delete(s.companies, code)
	for id, inv := range s.invoices {
		if inv.compCode == code {
			delete(s.invoices, id)
		}
	}
	return nil
}
