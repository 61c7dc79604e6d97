package passpolicy

// commonPasswords is a curated denylist of frequently compromised
// passwords, matched case-insensitively against the whole passphrase.
var commonPasswords = map[string]bool{
	"password":      true,
	"password1":     true,
	"password12":    true,
	"password123":   true,
	"password!":     true,
	"passw0rd":      true,
	"12345678":      true,
	"123456789":     true,
	"1234567890":    true,
	"12341234":      true,
	"87654321":      true,
	"987654321":     true,
	"qwertyui":      true,
	"qwerty123":     true,
	"qwertyuiop":    true,
	"asdfghjkl":     true,
	"1q2w3e4r":      true,
	"1qaz2wsx":      true,
	"zaq12wsx":      true,
	"abcd1234":      true,
	"letmein1":      true,
	"iloveyou":      true,
	"sunshine":      true,
	"princess":      true,
	"football":      true,
	"baseball":      true,
	"basketball":    true,
	"superman":      true,
	"spiderman":     true,
	"trustno1":      true,
	"welcome1":      true,
	"whatever":      true,
	"computer":      true,
	"internet":      true,
	"samsung1":      true,
	"michael1":      true,
	"jennifer":      true,
	"jessica1":      true,
	"charlie1":      true,
	"aa123456":      true,
	"admin123":      true,
	"administrator": true,
	"changeme":      true,
	"testing123":    true,
	"starwars":      true,
	"pokemon1":      true,
	"nintendo":      true,
	"facebook":      true,
	"instagram":     true,
	"linkedin":      true,
	"microsoft":     true,
	"chocolate":     true,
	"midnight":      true,
	"shadow12":      true,
	"dragon12":      true,
	"master12":      true,
	"freedom1":      true,
	"america1":      true,
	"rainbow1":      true,
	"butterfly":     true,
	"blink182":      true,
	"monkey12":      true,
	"hunter12":      true,
	"jordan23":      true,
	"secret12":      true,
}
