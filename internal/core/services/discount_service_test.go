package services_test

import (
	"testing"
	"time"

	"github.com/muhammadanas3/currency-exchange-api/internal/core/domain"
	"github.com/muhammadanas3/currency-exchange-api/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type DiscountServiceTestSuite struct {
	suite.Suite
	now     time.Time
	service *services.DiscountService
}

func (suite *DiscountServiceTestSuite) SetupTest() {
	suite.now = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	suite.service = services.NewDiscountServiceWithClock(func() time.Time { return suite.now })
}

func (suite *DiscountServiceTestSuite) orderOf(currencyTotal string, category domain.ItemCategory) domain.Order {
	return domain.Order{
		Items: []domain.LineItem{
			{Name: "item", Price: decimal.RequireFromString(currencyTotal), Category: category},
		},
		SourceCurrency: "USD",
		TargetCurrency: "EUR",
	}
}

func (suite *DiscountServiceTestSuite) principal(role domain.Role, accountAge time.Duration) domain.Principal {
	return domain.Principal{
		UserID:           "user-1",
		Role:             role,
		AccountCreatedAt: suite.now.Add(-accountAge),
	}
}

// Safely past the two-year cutoff even across a leap year.
const twoYears = 2 * 366 * 24 * time.Hour

func (suite *DiscountServiceTestSuite) TestEmployeeWithElectronics() {
	// total 1000.00, one ELECTRONICS item: employee 30% beats floor(1000/100)*5.
	order := suite.orderOf("1000.00", domain.CategoryElectronics)
	principal := suite.principal(domain.RoleEmployee, twoYears)

	discount := suite.service.Resolve(order, principal)

	assert.True(suite.T(), discount.Amount.Equal(decimal.RequireFromString("300.00")), "got %s", discount.Amount)
	assert.Equal(suite.T(), domain.PolicyEmployee, discount.Policy)
	assert.Equal(suite.T(), "Employee discount (30%)", discount.Policy.Label())
}

func (suite *DiscountServiceTestSuite) TestNewCustomerGetsNothing() {
	// total 50.00, account younger than 2 years: neither policy applies.
	order := suite.orderOf("50.00", domain.CategoryClothing)
	principal := suite.principal(domain.RoleCustomer, 100*24*time.Hour)

	discount := suite.service.Resolve(order, principal)

	assert.True(suite.T(), discount.Amount.IsZero())
	assert.Equal(suite.T(), domain.PolicyNone, discount.Policy)
	assert.Equal(suite.T(), "No discount", discount.Policy.Label())
}

func (suite *DiscountServiceTestSuite) TestSmallGroceryBasket() {
	// total 15.00, all groceries: volume discount floors to zero.
	order := suite.orderOf("15.00", domain.CategoryGroceries)
	principal := suite.principal(domain.RoleEmployee, twoYears)

	discount := suite.service.Resolve(order, principal)

	assert.True(suite.T(), discount.Amount.IsZero())
	assert.Equal(suite.T(), domain.PolicyNone, discount.Policy)
}

func (suite *DiscountServiceTestSuite) TestGroceriesSuppressRoleDiscount() {
	// total 150.00, all groceries, EMPLOYEE: only the volume discount applies.
	order := suite.orderOf("150.00", domain.CategoryGroceries)
	principal := suite.principal(domain.RoleEmployee, twoYears)

	discount := suite.service.Resolve(order, principal)

	assert.True(suite.T(), discount.Amount.Equal(decimal.RequireFromString("5.00")), "got %s", discount.Amount)
	assert.Equal(suite.T(), domain.PolicyVolume, discount.Policy)
	assert.Equal(suite.T(), "$5 per $100 discount", discount.Policy.Label())
}

func (suite *DiscountServiceTestSuite) TestCashierAffiliateTier() {
	order := suite.orderOf("200.00", domain.CategoryOther)
	principal := suite.principal(domain.RoleCashier, 0)

	discount := suite.service.Resolve(order, principal)

	// 10% of 200 = 20 beats floor(200/100)*5 = 10.
	assert.True(suite.T(), discount.Amount.Equal(decimal.RequireFromString("20.00")), "got %s", discount.Amount)
	assert.Equal(suite.T(), domain.PolicyAffiliate, discount.Policy)
}

func (suite *DiscountServiceTestSuite) TestLongTermCustomer() {
	order := suite.orderOf("200.00", domain.CategoryClothing)
	principal := suite.principal(domain.RoleCustomer, twoYears+24*time.Hour)

	discount := suite.service.Resolve(order, principal)

	// 5% of 200 = 10 ties floor(200/100)*5 = 10; the volume label wins the tie.
	assert.True(suite.T(), discount.Amount.Equal(decimal.RequireFromString("10.00")), "got %s", discount.Amount)
	assert.Equal(suite.T(), domain.PolicyVolume, discount.Policy)
}

func (suite *DiscountServiceTestSuite) TestLongTermCustomerBeatsVolume() {
	// 5% of 190 = 9.50 beats floor(190/100)*5 = 5.
	order := suite.orderOf("190.00", domain.CategoryClothing)
	principal := suite.principal(domain.RoleCustomer, twoYears+24*time.Hour)

	discount := suite.service.Resolve(order, principal)

	assert.True(suite.T(), discount.Amount.Equal(decimal.RequireFromString("9.50")), "got %s", discount.Amount)
	assert.Equal(suite.T(), domain.PolicyLongTerm, discount.Policy)
	assert.Equal(suite.T(), "Long-term customer discount (5%)", discount.Policy.Label())
}

func (suite *DiscountServiceTestSuite) TestVolumeTieReportsVolumeLabel() {
	// total 100.00: volume = 5.00 and long-term 5% = 5.00. The fixed
	// precedence reports the volume policy even though both explain the
	// amount. Charged amount is unaffected.
	order := suite.orderOf("100.00", domain.CategoryElectronics)
	principal := suite.principal(domain.RoleCustomer, twoYears)

	discount := suite.service.Resolve(order, principal)

	assert.True(suite.T(), discount.Amount.Equal(decimal.RequireFromString("5.00")))
	assert.Equal(suite.T(), domain.PolicyVolume, discount.Policy)
	assert.Equal(suite.T(), "$5 per $100 discount", discount.Policy.Label())
}

func (suite *DiscountServiceTestSuite) TestVolumeFloorTruncatesExactly() {
	// A quotient needing more than decimal.DivisionPrecision digits must
	// still truncate: 99.99999999999999999 / 100 stays below one full
	// $100 unit, so no volume discount applies.
	order := suite.orderOf("99.99999999999999999", domain.CategoryGroceries)
	principal := suite.principal(domain.RoleCustomer, twoYears)

	discount := suite.service.Resolve(order, principal)

	assert.True(suite.T(), discount.Amount.IsZero(), "got %s", discount.Amount)
	assert.Equal(suite.T(), domain.PolicyNone, discount.Policy)

	// One unit short of the next threshold on a larger total.
	order = suite.orderOf("199.99999999999999999", domain.CategoryGroceries)
	discount = suite.service.Resolve(order, principal)
	assert.True(suite.T(), discount.Amount.Equal(decimal.RequireFromString("5.00")), "got %s", discount.Amount)
	assert.Equal(suite.T(), domain.PolicyVolume, discount.Policy)
}

func (suite *DiscountServiceTestSuite) TestWinnerIsMaxNeverSum() {
	order := domain.Order{
		Items: []domain.LineItem{
			{Name: "tv", Price: decimal.RequireFromString("450.00"), Category: domain.CategoryElectronics},
			{Name: "rice", Price: decimal.RequireFromString("50.00"), Category: domain.CategoryGroceries},
		},
		SourceCurrency: "USD",
		TargetCurrency: "EUR",
	}
	principal := suite.principal(domain.RoleEmployee, twoYears)

	discount := suite.service.Resolve(order, principal)

	// employee 30% of 500 = 150; volume = 25. Winner only, never 175.
	assert.True(suite.T(), discount.Amount.Equal(decimal.RequireFromString("150.00")), "got %s", discount.Amount)
}

func (suite *DiscountServiceTestSuite) TestDiscountNeverExceedsTotal() {
	totals := []string{"1.00", "99.99", "100.00", "250.50", "10000.00"}
	roles := []domain.Role{domain.RoleEmployee, domain.RoleCashier, domain.RoleCustomer}
	for _, total := range totals {
		for _, role := range roles {
			order := suite.orderOf(total, domain.CategoryOther)
			discount := suite.service.Resolve(order, suite.principal(role, twoYears+time.Hour))
			assert.True(suite.T(), discount.Amount.GreaterThanOrEqual(decimal.Zero))
			assert.True(suite.T(), discount.Amount.LessThanOrEqual(order.Total()),
				"discount %s exceeds total %s for role %s", discount.Amount, total, role)
		}
	}
}

func TestDiscountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DiscountServiceTestSuite))
}
