// Package unifiaccess provides a typed client for the UniFi Access
// developer API: the HTTP control surface for UniFi door access and
// electronic lock hardware.
//
// The API is documented by the vendor as a PDF reference and is served by
// the Access controller itself, HTTPS-only on port 12445, reachable only
// from the controller's LAN (use a VPN for offsite access). To create an
// API token, open the Access application and go to
// Settings -> Security -> Advanced.
//
// A basic example:
//
//	client, err := unifiaccess.New("192.168.1.1", token)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	users, err := client.ListUsers(context.Background())
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(users)
//
// See AccessAPIClient for the full set of operations. Coverage follows the
// endpoints needed to run a door access system: users, access policies,
// doors and locking rules, NFC card and PIN credentials, visitors, devices,
// and the system log.
package unifiaccess
