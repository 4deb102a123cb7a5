package sheets

import (
	"context"
	"fmt"
	"strconv"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	sheetsv4 "google.golang.org/api/sheets/v4"
	"google.golang.org/api/option"
)

const readonlyScope = "https://www.googleapis.com/auth/spreadsheets.readonly"

// googleAPI implements API on top of sheets/v4 with service-account JWT
// auth.
type googleAPI struct {
	svc           *sheetsv4.Service
	spreadsheetID string
}

func newGoogleAPI(ctx context.Context, clientEmail, privateKey, spreadsheetID string) (*googleAPI, error) {
	jwtConfig := &jwt.Config{
		Email:      clientEmail,
		PrivateKey: []byte(privateKey),
		Scopes:     []string{readonlyScope},
		TokenURL:   google.JWTTokenURL,
	}

	svc, err := sheetsv4.NewService(ctx, option.WithHTTPClient(jwtConfig.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	return &googleAPI{svc: svc, spreadsheetID: spreadsheetID}, nil
}

func (g *googleAPI) SheetTitles(ctx context.Context) ([]SheetInfo, error) {
	resp, err := g.svc.Spreadsheets.Get(g.spreadsheetID).
		Fields("sheets.properties").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch spreadsheet metadata: %w", err)
	}

	infos := make([]SheetInfo, 0, len(resp.Sheets))
	for _, s := range resp.Sheets {
		if s.Properties == nil {
			continue
		}
		infos = append(infos, SheetInfo{
			ID:    strconv.FormatInt(s.Properties.SheetId, 10),
			Title: s.Properties.Title,
		})
	}
	return infos, nil
}

func (g *googleAPI) Values(ctx context.Context, rangeA1 string) ([][]string, error) {
	resp, err := g.svc.Spreadsheets.Values.Get(g.spreadsheetID, rangeA1).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch values for %s: %w", rangeA1, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, fmt.Sprint(cell))
		}
		rows = append(rows, cells)
	}
	return rows, nil
}
