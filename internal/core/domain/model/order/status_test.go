package order_test

import (
	"fmt"
	"testing"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Pending))
		assert.Equal(t, 2, int(order.InProgress))
		assert.Equal(t, 3, int(order.Executed))
		assert.Equal(t, 4, int(order.Completed))
		assert.Equal(t, 5, int(order.Cancelled))
		assert.Equal(t, 6, int(order.Delivered))
		assert.Equal(t, 7, int(order.PendingPayment))
		assert.Equal(t, 8, int(order.Paid))
	})

	t.Run("should have distinct values", func(t *testing.T) {
		statuses := []order.Status{
			order.Unknown,
			order.Pending,
			order.InProgress,
			order.Executed,
			order.Completed,
			order.Cancelled,
			order.Delivered,
			order.PendingPayment,
			order.Paid,
		}

		for i, status1 := range statuses {
			for j, status2 := range statuses {
				if i != j {
					assert.NotEqual(t, status1, status2,
						"statuses at indices %d and %d should be different", i, j)
				}
			}
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Pending,
			order.InProgress,
			order.Executed,
			order.Completed,
			order.Cancelled,
			order.Delivered,
			order.PendingPayment,
			order.Paid,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				err := status.Validate()
				require.NoError(t, err)
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "status is invalid")
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Status(-1),
			order.Status(9),
			order.Status(100),
			order.Status(-999),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "status is invalid")
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return correct string for valid statuses", func(t *testing.T) {
		testCases := []struct {
			status   order.Status
			expected string
		}{
			{order.Pending, "Pending"},
			{order.InProgress, "InProgress"},
			{order.Executed, "Executed"},
			{order.Completed, "Completed"},
			{order.Cancelled, "Cancelled"},
			{order.Delivered, "Delivered"},
			{order.PendingPayment, "PendingPayment"},
			{order.Paid, "Paid"},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("should return %s for %d", tc.expected, int(tc.status)), func(t *testing.T) {
				result := tc.status.String()
				assert.Equal(t, tc.expected, result)
			})
		}
	})

	t.Run("should return Unknown for invalid statuses", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Unknown,
			order.Status(-1),
			order.Status(9),
			order.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should return Unknown for status value %d", int(status)), func(t *testing.T) {
				result := status.String()
				assert.Equal(t, "Unknown", result)
			})
		}
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse all valid status names", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected order.Status
		}{
			{"Pending", order.Pending},
			{"InProgress", order.InProgress},
			{"Executed", order.Executed},
			{"Completed", order.Completed},
			{"Cancelled", order.Cancelled},
			{"Delivered", order.Delivered},
			{"PendingPayment", order.PendingPayment},
			{"Paid", order.Paid},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("should parse %s", tc.input), func(t *testing.T) {
				status, err := order.StatusFromString(tc.input)

				require.NoError(t, err)
				assert.Equal(t, tc.expected, status)
			})
		}
	})

	t.Run("should reject strings outside the closed set", func(t *testing.T) {
		invalidInputs := []string{
			"",
			"pending",
			"PENDING",
			"Shipped",
			"Pending ",
			"Unknown",
		}

		for _, input := range invalidInputs {
			t.Run(fmt.Sprintf("should reject %q", input), func(t *testing.T) {
				status, err := order.StatusFromString(input)

				require.Error(t, err)
				assert.Equal(t, order.Unknown, status)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "status is invalid")
			})
		}
	})

	t.Run("should round-trip every valid status through String", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Pending,
			order.InProgress,
			order.Executed,
			order.Completed,
			order.Cancelled,
			order.Delivered,
			order.PendingPayment,
			order.Paid,
		}

		for _, status := range validStatuses {
			parsed, err := order.StatusFromString(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})
}

func TestStatus_EdgeCases(t *testing.T) {
	t.Run("should handle zero value status", func(t *testing.T) {
		var status order.Status // Zero value is Unknown

		assert.Equal(t, order.Unknown, status)
		assert.Equal(t, "Unknown", status.String())
		require.Error(t, status.Validate())
	})

	t.Run("should have consistent String() and Validate() behavior", func(t *testing.T) {
		allPossibleStatuses := []order.Status{
			order.Status(-100),
			order.Status(-1),
			order.Unknown,
			order.Pending,
			order.InProgress,
			order.Executed,
			order.Completed,
			order.Cancelled,
			order.Delivered,
			order.PendingPayment,
			order.Paid,
			order.Status(9),
			order.Status(100),
		}

		for _, status := range allPossibleStatuses {
			t.Run(fmt.Sprintf("status %d", int(status)), func(t *testing.T) {
				str := status.String()
				err := status.Validate()

				if str == "Unknown" {
					require.Error(t, err, "status with String() 'Unknown' should fail validation")
				} else {
					require.NoError(t, err, "status with valid String() should pass validation")
				}
			})
		}
	})
}
