package main

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

const campusPointABI = `[
 {"type":"function","name":"name","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
 {"type":"function","name":"symbol","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
 {"type":"function","name":"decimals","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint8"}]},
 {"type":"function","name":"totalSupply","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
 {"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
 {"type":"function","name":"transfer","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
 {"type":"function","name":"mint","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[]},
 {"type":"function","name":"owner","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"address"}]},
 {"type":"function","name":"transferOwnership","stateMutability":"nonpayable","inputs":[{"name":"newOwner","type":"address"}],"outputs":[]},
 {"type":"event","name":"Transfer","anonymous":false,"inputs":[{"name":"from","type":"address","indexed":true},{"name":"to","type":"address","indexed":true},{"name":"value","type":"uint256","indexed":false}]}
]`

const activityCertificateABI = `[
 {"type":"function","name":"name","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
 {"type":"function","name":"symbol","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
 {"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
 {"type":"function","name":"ownerOf","stateMutability":"view","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"address"}]},
 {"type":"function","name":"tokenURI","stateMutability":"view","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"string"}]},
 {"type":"function","name":"getNextTokenId","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
 {"type":"function","name":"mintCertificate","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"uri","type":"string"}],"outputs":[{"name":"","type":"uint256"}]},
 {"type":"function","name":"owner","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"address"}]},
 {"type":"function","name":"transferOwnership","stateMutability":"nonpayable","inputs":[{"name":"newOwner","type":"address"}],"outputs":[]},
 {"type":"event","name":"Transfer","anonymous":false,"inputs":[{"name":"from","type":"address","indexed":true},{"name":"to","type":"address","indexed":true},{"name":"tokenId","type":"uint256","indexed":true}]}
]`

const activityManagerABI = `[
 {"type":"function","name":"owner","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"address"}]},
 {"type":"function","name":"campusPoint","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"address"}]},
 {"type":"function","name":"activityCert","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"address"}]},
 {"type":"function","name":"nextActivityId","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
 {"type":"function","name":"getActivity","stateMutability":"view","inputs":[{"name":"activityId","type":"uint256"}],"outputs":[{"name":"id","type":"uint256"},{"name":"name","type":"string"},{"name":"pointReward","type":"uint256"},{"name":"isActive","type":"bool"},{"name":"certUri","type":"string"}]},
 {"type":"function","name":"hasRewarded","stateMutability":"view","inputs":[{"name":"activityId","type":"uint256"},{"name":"student","type":"address"}],"outputs":[{"name":"","type":"bool"}]},
 {"type":"function","name":"hasClaimed","stateMutability":"view","inputs":[{"name":"activityId","type":"uint256"},{"name":"student","type":"address"}],"outputs":[{"name":"","type":"bool"}]},
 {"type":"function","name":"hasRequested","stateMutability":"view","inputs":[{"name":"activityId","type":"uint256"},{"name":"student","type":"address"}],"outputs":[{"name":"","type":"bool"}]},
 {"type":"function","name":"canClaimCertificate","stateMutability":"view","inputs":[{"name":"activityId","type":"uint256"},{"name":"student","type":"address"}],"outputs":[{"name":"","type":"bool"}]},
 {"type":"function","name":"createActivity","stateMutability":"nonpayable","inputs":[{"name":"name","type":"string"},{"name":"pointReward","type":"uint256"}],"outputs":[]},
 {"type":"function","name":"setActivityCertUri","stateMutability":"nonpayable","inputs":[{"name":"activityId","type":"uint256"},{"name":"uri","type":"string"}],"outputs":[]},
 {"type":"function","name":"setActivityActive","stateMutability":"nonpayable","inputs":[{"name":"activityId","type":"uint256"},{"name":"active","type":"bool"}],"outputs":[]},
 {"type":"function","name":"rewardStudent","stateMutability":"nonpayable","inputs":[{"name":"activityId","type":"uint256"},{"name":"student","type":"address"}],"outputs":[]},
 {"type":"function","name":"claimCertificate","stateMutability":"nonpayable","inputs":[{"name":"activityId","type":"uint256"}],"outputs":[]},
 {"type":"function","name":"mintCertificate","stateMutability":"nonpayable","inputs":[{"name":"activityId","type":"uint256"},{"name":"student","type":"address"},{"name":"uri","type":"string"}],"outputs":[]},
 {"type":"function","name":"requestCertificate","stateMutability":"nonpayable","inputs":[{"name":"activityId","type":"uint256"}],"outputs":[]},
 {"type":"function","name":"getPendingRequests","stateMutability":"view","inputs":[{"name":"activityId","type":"uint256"}],"outputs":[{"name":"","type":"address[]"}]},
 {"type":"function","name":"getPendingRequestCount","stateMutability":"view","inputs":[{"name":"activityId","type":"uint256"}],"outputs":[{"name":"","type":"uint256"}]},
 {"type":"function","name":"approveCertificateRequest","stateMutability":"nonpayable","inputs":[{"name":"activityId","type":"uint256"},{"name":"student","type":"address"}],"outputs":[]},
 {"type":"event","name":"ActivityCreated","anonymous":false,"inputs":[{"name":"id","type":"uint256","indexed":true},{"name":"name","type":"string","indexed":false},{"name":"pointReward","type":"uint256","indexed":false}]},
 {"type":"event","name":"StudentRewarded","anonymous":false,"inputs":[{"name":"activityId","type":"uint256","indexed":true},{"name":"student","type":"address","indexed":true},{"name":"pointReward","type":"uint256","indexed":false}]},
 {"type":"event","name":"CertificateMinted","anonymous":false,"inputs":[{"name":"activityId","type":"uint256","indexed":true},{"name":"student","type":"address","indexed":true},{"name":"tokenId","type":"uint256","indexed":false},{"name":"uri","type":"string","indexed":false}]},
 {"type":"event","name":"CertUriSet","anonymous":false,"inputs":[{"name":"activityId","type":"uint256","indexed":true},{"name":"uri","type":"string","indexed":false}]},
 {"type":"event","name":"CertificateClaimed","anonymous":false,"inputs":[{"name":"activityId","type":"uint256","indexed":true},{"name":"student","type":"address","indexed":true},{"name":"tokenId","type":"uint256","indexed":false}]},
 {"type":"event","name":"CertificateRequested","anonymous":false,"inputs":[{"name":"activityId","type":"uint256","indexed":true},{"name":"student","type":"address","indexed":true}]},
 {"type":"event","name":"CertificateApproved","anonymous":false,"inputs":[{"name":"activityId","type":"uint256","indexed":true},{"name":"student","type":"address","indexed":true},{"name":"tokenId","type":"uint256","indexed":false}]}
]`

var (
	parsedPointABI       = mustParseABI(campusPointABI)
	parsedCertificateABI = mustParseABI(activityCertificateABI)
	parsedManagerABI     = mustParseABI(activityManagerABI)
)

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(err)
	}
	return parsed
}
