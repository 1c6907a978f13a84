// Package fetch pulls ABI band files out of the public NOAA archive
// buckets on S3 and decodes them into raw bands for the render
// pipeline. The buckets are open to anonymous reads, no AWS account
// involved.
package fetch

import(
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/wxsat/fulldisk/pkg/goes"
	"github.com/wxsat/fulldisk/pkg/render"
)

// How many hours behind the target time we'll look for imagery
// before giving up. Full-disk scans land every 10 minutes, so going
// back this far only matters around outages.
const searchHours = 6

type Client struct {
	s3Api s3iface.S3API
}

// NewClient builds a client against the real S3, with anonymous
// credentials - the NOAA buckets are public.
func NewClient() (*Client, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String("us-east-1"), // where the noaa-goes* buckets live
		Credentials: credentials.AnonymousCredentials,
	})
	if err != nil {
		return nil, errors.Wrap(err, "aws session")
	}
	return &Client{s3Api: s3.New(sess)}, nil
}

// NewClientWithAPI is for tests, which stub the S3 API.
func NewClientWithAPI(api s3iface.S3API) *Client {
	return &Client{s3Api: api}
}

// FetchBandSet finds and downloads the three true-color bands
// closest to the target time. All three must come from the same
// product; if any band can't be found within the search window the
// whole fetch fails.
func (c *Client)FetchBandSet(sat goes.Satellite, target time.Time) (render.BandSet, error) {
	bands := []int{render.BandBlue, render.BandRed, render.BandVeggie}

	keys := map[int]string{}
	for _, band := range bands {
		key, err := c.findBandKey(sat.Bucket, band, target)
		if err != nil {
			found := []string{}
			for b := range keys {
				found = append(found, fmt.Sprintf("C%02d", b))
			}
			return render.BandSet{}, errors.Wrapf(err,
				"band C%02d not found (found: %s)", band, strings.Join(found, " "))
		}
		keys[band] = key
	}

	imageTime, err := ParseKeyTime(keys[render.BandRed])
	if err != nil {
		return render.BandSet{}, errors.Wrap(err, "object key timestamp")
	}
	log.Debug().Str("satellite", sat.Name).Time("image", imageTime).Msg("found band files")

	raw := map[int]render.RawBand{}
	for _, band := range bands {
		data, err := c.readObject(sat.Bucket, keys[band])
		if err != nil {
			return render.BandSet{}, errors.Wrapf(err, "download band C%02d", band)
		}
		log.Debug().Int("band", band).Int("bytes", len(data)).Str("key", keys[band]).Msg("downloaded")

		rb, err := DecodeCMI(data, band)
		if err != nil {
			return render.BandSet{}, errors.Wrapf(err, "decode band C%02d", band)
		}
		raw[band] = rb
	}

	return render.BandSet{
		Blue:   raw[render.BandBlue],
		Red:    raw[render.BandRed],
		Veggie: raw[render.BandVeggie],
		Time:   imageTime,
	}, nil
}

// findBandKey walks backwards an hour at a time from the target,
// listing each hour's prefix until it sees a matching band file.
// Object keys embed the scan start time, so within one listing the
// lexical max is the newest.
func (c *Client)findBandKey(bucket string, band int, target time.Time) (string, error) {
	needle := fmt.Sprintf("M6C%02d", band)

	for hoursBack:=0; hoursBack<searchHours; hoursBack++ {
		t := target.UTC().Add(-time.Duration(hoursBack) * time.Hour)
		prefix := fmt.Sprintf("%s/%d/%03d/%02d/", goes.Product, t.Year(), t.YearDay(), t.Hour())

		listing, err := c.listObjects(bucket, prefix)
		if err != nil {
			return "", errors.Wrapf(err, "list s3://%s/%s", bucket, prefix)
		}

		best := ""
		for _, key := range listing {
			if strings.Contains(key, needle) && strings.HasSuffix(key, ".nc") && key > best {
				best = key
			}
		}
		if best != "" {
			return best, nil
		}
	}

	return "", fmt.Errorf("no %s object within %dh of %s", needle, searchHours, target.UTC().Format(time.RFC3339))
}

// listObjects pages through ListObjectsV2 results until S3 stops
// handing out continuation tokens.
func (c *Client)listObjects(bucket, prefix string) ([]string, error) {
	result := []string{}

	params := s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
		Prefix: aws.String(prefix),
	}

	for {
		listing, err := c.s3Api.ListObjectsV2(&params)
		if err != nil {
			return nil, err
		}

		for _, obj := range listing.Contents {
			if obj.Key != nil {
				result = append(result, *obj.Key)
			}
		}

		if listing.IsTruncated != nil && *listing.IsTruncated && listing.NextContinuationToken != nil {
			params.ContinuationToken = listing.NextContinuationToken
		} else {
			break
		}
	}

	return result, nil
}

func (c *Client)readObject(bucket, key string) ([]byte, error) {
	result, err := c.s3Api.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	defer result.Body.Close()

	return io.ReadAll(result.Body)
}

// ParseKeyTime extracts the scan start time from an ABI object key.
// Filenames look like
//   OR_ABI-L2-CMIPF-M6C02_G18_s20241671800210_e..._c....nc
// where the _s segment is year, day-of-year, HHMMSS and tenths of a
// second.
func ParseKeyTime(key string) (time.Time, error) {
	name := key
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}

	i := strings.Index(name, "_s")
	if i < 0 {
		return time.Time{}, fmt.Errorf("no _s segment in '%s'", name)
	}
	rest := name[i+2:]
	j := strings.Index(rest, "_e")
	if j < 0 {
		return time.Time{}, fmt.Errorf("no _e segment in '%s'", name)
	}
	ts := rest[:j]
	if len(ts) < 13 {
		return time.Time{}, fmt.Errorf("short timestamp '%s' in '%s'", ts, name)
	}

	// year + day-of-year + time of day; tenths of a second ignored
	t, err := time.ParseInLocation("2006002150405", ts[:13], time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("timestamp '%s' in '%s': %v", ts, name, err)
	}
	return t, nil
}
