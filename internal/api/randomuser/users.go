package randomuser

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"randomuser-bot/internal/models"

	"go.uber.org/zap"
)

var ErrMalformedUser = errors.New("malformed user")

// FetchUsers requests count random users and flattens them into rows
func (c *Client) FetchUsers(ctx context.Context, count int) ([]models.UserRow, error) {
	resp, err := c.GetUsers(ctx, count)
	if err != nil {
		return nil, err
	}

	rows, err := ToRows(resp.Results)
	if err != nil {
		c.logger.Error("failed to transform users", zap.Error(err))
		return nil, err
	}

	return rows, nil
}

func (c *Client) GetUsers(ctx context.Context, count int) (*UsersResponse, error) {
	queryParams := url.Values{}
	queryParams.Set("results", strconv.Itoa(count))

	data, err := c.get(ctx, "/", queryParams)
	if err != nil {
		c.logger.Error("failed to get users",
			zap.Int("results", count),
			zap.Error(err),
		)
		return nil, fmt.Errorf("get users: %w", err)
	}

	var response UsersResponse
	if err := c.parseResponse(data, &response); err != nil {
		c.logger.Error("failed to parse users response", zap.Error(err))
		return nil, err
	}

	c.logger.Debug("users received",
		zap.Int("requested", count),
		zap.Int("returned", len(response.Results)),
		zap.String("seed", response.Info.Seed),
	)

	return &response, nil
}

// ToRows keeps the response order and uses the position as row ID.
// One malformed user fails the whole batch.
func ToRows(users []User) ([]models.UserRow, error) {
	rows := make([]models.UserRow, len(users))
	for i, u := range users {
		if u.Name == nil {
			return nil, fmt.Errorf("%w: result %d has no name", ErrMalformedUser, i)
		}
		if u.Picture == nil {
			return nil, fmt.Errorf("%w: result %d has no picture", ErrMalformedUser, i)
		}

		rows[i] = models.UserRow{
			ID:           i,
			Title:        u.Name.Title,
			First:        u.Name.First,
			Last:         u.Name.Last,
			Email:        u.Email,
			Phone:        u.Phone,
			LargePicture: u.Picture.Large,
		}
	}
	return rows, nil
}
