package adsterraclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	adsterradomain "github.com/vfg2006/partner-revenue-api/infrastructure/integrator/adsterra/domain"
	"github.com/vfg2006/partner-revenue-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetStats consulta /publisher/stats.json. Respostas fora de 2xx e falhas de
// rede voltam como *adsterradomain.APIError.
func (c *AdsterraClient) GetStats(ctx context.Context, apiKey string, params StatsParams) (*adsterradomain.StatsResponse, error) {
	query := url.Values{}
	query.Set("start_date", utils.FormatDate(params.StartDate))
	query.Set("finish_date", utils.FormatDate(params.FinishDate))
	query.Set("group_by", string(params.GroupBy))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.statsURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, &adsterradomain.APIError{Message: err.Error(), Err: err}
	}
	req.Header.Set("X-API-Key", apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"group_by": params.GroupBy,
			"error":    err.Error(),
		}).Error("adsterra: erro ao fazer a requisição")
		return nil, &adsterradomain.APIError{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &adsterradomain.APIError{StatusCode: resp.StatusCode, Message: err.Error(), Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &adsterradomain.APIError{
			StatusCode: resp.StatusCode,
			Message:    adsterradomain.ParseErrorMessage(body, strconv.Itoa(resp.StatusCode)+" "+http.StatusText(resp.StatusCode)),
		}
	}

	var stats adsterradomain.StatsResponse
	if err := json.Unmarshal(body, &stats); err != nil {
		return nil, &adsterradomain.APIError{
			StatusCode: resp.StatusCode,
			Message:    "resposta com JSON inválido",
			Err:        err,
		}
	}

	return &stats, nil
}
