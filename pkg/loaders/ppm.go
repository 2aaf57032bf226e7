package loaders

import (
	"bufio"
	"fmt"
	"io"

	"github.com/akopec/go-whitted-raytracer/pkg/core"
	"github.com/akopec/go-whitted-raytracer/pkg/texture"
)

// DecodePPM reads a binary (P6) PPM image and converts it to a texture with
// channels normalized to [0, 1].
func DecodePPM(r io.Reader) (*texture.Texture, error) {
	br := bufio.NewReader(r)

	magic, err := readToken(br)
	if err != nil {
		return nil, fmt.Errorf("failed to read PPM header: %w", err)
	}
	if magic != "P6" {
		return nil, fmt.Errorf("invalid PPM magic %q, expected P6", magic)
	}

	width, err := readIntToken(br)
	if err != nil {
		return nil, fmt.Errorf("failed to read PPM width: %w", err)
	}
	height, err := readIntToken(br)
	if err != nil {
		return nil, fmt.Errorf("failed to read PPM height: %w", err)
	}
	maxVal, err := readIntToken(br)
	if err != nil {
		return nil, fmt.Errorf("failed to read PPM max value: %w", err)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid PPM dimensions %dx%d", width, height)
	}
	if maxVal <= 0 || maxVal > 255 {
		return nil, fmt.Errorf("unsupported PPM max value %d", maxVal)
	}

	raw := make([]byte, width*height*3)
	if _, err := io.ReadFull(br, raw); err != nil {
		return nil, fmt.Errorf("failed to read PPM pixel data: %w", err)
	}

	scale := 1.0 / float64(maxVal)
	pixels := make([]core.Vec3, width*height)
	for i := range pixels {
		pixels[i] = core.NewVec3(
			float64(raw[i*3])*scale,
			float64(raw[i*3+1])*scale,
			float64(raw[i*3+2])*scale,
		)
	}

	return texture.New(width, height, pixels)
}

// EncodePPM writes a binary (P6) PPM image from a row-major color buffer,
// clamping each channel to [0, 1] and quantizing to 8 bits.
func EncodePPM(w io.Writer, width, height int, pixels []core.Vec3) error {
	if len(pixels) != width*height {
		return fmt.Errorf("pixel count %d does not match %dx%d", len(pixels), width, height)
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", width, height); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}

	buf := make([]byte, 3)
	for _, p := range pixels {
		c := p.Clamp(0, 1)
		buf[0] = byte(c.X * 255)
		buf[1] = byte(c.Y * 255)
		buf[2] = byte(c.Z * 255)
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("failed to write PPM pixel data: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush PPM data: %w", err)
	}
	return nil
}

// readToken skips whitespace and '#' comments, then reads one header token.
// PPM headers allow comment lines anywhere between tokens.
func readToken(br *bufio.Reader) (string, error) {
	var token []byte
	inComment := false
	for {
		b, err := br.ReadByte()
		if err != nil {
			if err == io.EOF && len(token) > 0 {
				return string(token), nil
			}
			return "", err
		}
		switch {
		case inComment:
			if b == '\n' {
				inComment = false
			}
		case b == '#':
			if len(token) > 0 {
				// Comment terminates the token; keep the '#' for the next read
				if err := br.UnreadByte(); err != nil {
					return "", err
				}
				return string(token), nil
			}
			inComment = true
		case isSpace(b):
			if len(token) > 0 {
				return string(token), nil
			}
		default:
			token = append(token, b)
		}
	}
}

func readIntToken(br *bufio.Reader) (int, error) {
	token, err := readToken(br)
	if err != nil {
		return 0, err
	}
	var n int
	if _, err := fmt.Sscanf(token, "%d", &n); err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", token, err)
	}
	return n, nil
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}
