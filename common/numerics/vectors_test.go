package numerics_test

import (
	"os"
	"testing"

	"github.com/11090815/hypernum/common/numerics"
	"github.com/11090815/hypernum/vars"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type vectors struct {
	Add []struct {
		A    numerics.Integer `yaml:"a"`
		B    numerics.Integer `yaml:"b"`
		Sum  numerics.Integer `yaml:"sum"`
		Diff numerics.Integer `yaml:"diff"`
	} `yaml:"add"`
	Mul []struct {
		A       numerics.Integer `yaml:"a"`
		B       numerics.Integer `yaml:"b"`
		Product numerics.Integer `yaml:"product"`
	} `yaml:"mul"`
	DivMod []struct {
		A         numerics.Integer `yaml:"a"`
		B         numerics.Integer `yaml:"b"`
		Quotient  numerics.Integer `yaml:"quotient"`
		Remainder numerics.Integer `yaml:"remainder"`
	} `yaml:"divmod"`
	ModPow []struct {
		Base     numerics.Integer `yaml:"base"`
		Exponent numerics.Integer `yaml:"exponent"`
		Modulus  numerics.Integer `yaml:"modulus"`
		Result   numerics.Integer `yaml:"result"`
	} `yaml:"modpow"`
	ModInv []struct {
		Value   numerics.Integer `yaml:"value"`
		Modulus numerics.Integer `yaml:"modulus"`
		Inverse numerics.Integer `yaml:"inverse"`
		None    bool             `yaml:"none"`
	} `yaml:"modinv"`
	Sqrt []struct {
		Value numerics.Integer `yaml:"value"`
		Root  numerics.Integer `yaml:"root"`
	} `yaml:"sqrt"`
}

func loadVectors(t *testing.T) vectors {
	data, err := os.ReadFile("testdata/vectors.yaml")
	require.NoError(t, err)

	var v vectors
	require.NoError(t, yaml.Unmarshal(data, &v))
	require.NotEmpty(t, v.Add)
	require.NotEmpty(t, v.DivMod)
	return v
}

func TestVectors(t *testing.T) {
	v := loadVectors(t)

	t.Run("add", func(t *testing.T) {
		for _, c := range v.Add {
			requireEqual(t, c.Sum, c.A.Add(c.B))
			requireEqual(t, c.Diff, c.A.Sub(c.B))
		}
	})

	t.Run("mul", func(t *testing.T) {
		for _, c := range v.Mul {
			requireEqual(t, c.Product, c.A.Mul(c.B))
			requireEqual(t, c.Product, c.B.Mul(c.A))
		}
	})

	t.Run("divmod", func(t *testing.T) {
		for _, c := range v.DivMod {
			q, r := c.A.DivMod(c.B)
			requireEqual(t, c.Quotient, q)
			requireEqual(t, c.Remainder, r)
		}
	})

	t.Run("modpow", func(t *testing.T) {
		for _, c := range v.ModPow {
			result, err := c.Base.ModPow(c.Exponent, c.Modulus)
			require.NoError(t, err)
			requireEqual(t, c.Result, result)
		}
	})

	t.Run("modinv", func(t *testing.T) {
		for _, c := range v.ModInv {
			inverse, err := c.Value.ModInverse(c.Modulus)
			if c.None {
				var target vars.ErrorNoInverseExists
				require.ErrorAs(t, err, &target, "%s mod %s", c.Value, c.Modulus)
				continue
			}
			require.NoError(t, err)
			requireEqual(t, c.Inverse, inverse)
		}
	})

	t.Run("sqrt", func(t *testing.T) {
		for _, c := range v.Sqrt {
			root, err := c.Value.Sqrt()
			require.NoError(t, err)
			requireEqual(t, c.Root, root)
		}
	})
}
